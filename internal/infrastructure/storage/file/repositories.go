package file

import (
	"context"
	"slices"

	"github.com/gameops/ticket-board/internal/core/domain"
)

// The four repositories are thin views over the shared Store. Mutations
// update the in-memory table first and roll back if the rewrite fails.

// UserRepository implements ports.UserRepository.
type UserRepository struct{ store *Store }

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{
		Username:     username,
		PasswordHash: rec.PasswordHash,
		Role:         domain.Role(rec.Role),
	}, nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	s.users[user.Username] = userRecord{
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
	}
	if err := s.save(usersFile, s.users); err != nil {
		delete(s.users, user.Username)
		return err
	}
	return nil
}

func (r *UserRepository) Delete(_ context.Context, username string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, username)
	if err := s.save(usersFile, s.users); err != nil {
		s.users[username] = rec
		return err
	}
	return nil
}

// PlayerRepository implements ports.PlayerRepository.
type PlayerRepository struct{ store *Store }

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) FindBySteamID(_ context.Context, steamID string) (*domain.Player, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.players[steamID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	p := toPlayer(steamID, rec)
	return &p, nil
}

func (r *PlayerRepository) Create(_ context.Context, player *domain.Player) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[player.SteamID]; exists {
		return domain.ErrPlayerExists
	}
	s.players[player.SteamID] = playerRecord{
		Name:       player.Name,
		Discord:    player.Discord,
		Supervisor: player.Supervisor,
	}
	if err := s.save(playersFile, s.players); err != nil {
		delete(s.players, player.SteamID)
		return err
	}
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, steamID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.players[steamID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	delete(s.players, steamID)
	if err := s.save(playersFile, s.players); err != nil {
		s.players[steamID] = rec
		return err
	}
	return nil
}

func (r *PlayerRepository) List(_ context.Context, supervisor string) ([]domain.Player, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	players := make([]domain.Player, 0, len(s.players))
	for id, rec := range s.players {
		if supervisor != "" && rec.Supervisor != supervisor {
			continue
		}
		players = append(players, toPlayer(id, rec))
	}
	return players, nil
}

func toPlayer(steamID string, rec playerRecord) domain.Player {
	return domain.Player{
		SteamID:    steamID,
		Name:       rec.Name,
		Discord:    rec.Discord,
		Supervisor: rec.Supervisor,
	}
}

// SupervisorRepository implements ports.SupervisorRepository. The list
// keeps registration order.
type SupervisorRepository struct{ store *Store }

func NewSupervisorRepository(store *Store) *SupervisorRepository {
	return &SupervisorRepository{store: store}
}

func (r *SupervisorRepository) List(_ context.Context) ([]string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.supervisors), nil
}

func (r *SupervisorRepository) Exists(_ context.Context, username string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Contains(s.supervisors, username), nil
}

func (r *SupervisorRepository) Add(_ context.Context, username string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.supervisors, username) {
		return domain.ErrSupervisorExists
	}
	s.supervisors = append(s.supervisors, username)
	if err := s.save(supervisorsFile, s.supervisors); err != nil {
		s.supervisors = s.supervisors[:len(s.supervisors)-1]
		return err
	}
	return nil
}

func (r *SupervisorRepository) Remove(_ context.Context, username string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.supervisors, username)
	if i < 0 {
		return domain.ErrSupervisorNotFound
	}
	prev := slices.Clone(s.supervisors)
	s.supervisors = slices.Delete(s.supervisors, i, i+1)
	if err := s.save(supervisorsFile, s.supervisors); err != nil {
		s.supervisors = prev
		return err
	}
	return nil
}

// StatusRepository implements ports.StatusRepository.
type StatusRepository struct{ store *Store }

func NewStatusRepository(store *Store) *StatusRepository {
	return &StatusRepository{store: store}
}

func (r *StatusRepository) Find(_ context.Context, steamID string) (*domain.Status, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.statuses[steamID]
	if !ok {
		return nil, domain.ErrStatusNotFound
	}
	st := toStatus(steamID, rec)
	return &st, nil
}

func (r *StatusRepository) Set(_ context.Context, status *domain.Status) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.statuses[status.SteamID]
	s.statuses[status.SteamID] = statusRecord{
		Status:    string(status.Kind),
		EndDate:   status.EndDate,
		ReturnDay: status.ReturnDay,
	}
	if err := s.save(statusesFile, s.statuses); err != nil {
		if existed {
			s.statuses[status.SteamID] = prev
		} else {
			delete(s.statuses, status.SteamID)
		}
		return err
	}
	return nil
}

func (r *StatusRepository) Delete(_ context.Context, steamID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.statuses[steamID]
	if !ok {
		return domain.ErrStatusNotFound
	}
	delete(s.statuses, steamID)
	if err := s.save(statusesFile, s.statuses); err != nil {
		s.statuses[steamID] = rec
		return err
	}
	return nil
}

func (r *StatusRepository) DeleteBatch(_ context.Context, steamIDs []string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make(map[string]statusRecord, len(steamIDs))
	for _, id := range steamIDs {
		if rec, ok := s.statuses[id]; ok {
			removed[id] = rec
			delete(s.statuses, id)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	if err := s.save(statusesFile, s.statuses); err != nil {
		for id, rec := range removed {
			s.statuses[id] = rec
		}
		return err
	}
	return nil
}

func (r *StatusRepository) List(_ context.Context) ([]domain.Status, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]domain.Status, 0, len(s.statuses))
	for id, rec := range s.statuses {
		statuses = append(statuses, toStatus(id, rec))
	}
	return statuses, nil
}

func toStatus(steamID string, rec statusRecord) domain.Status {
	return domain.Status{
		SteamID:   steamID,
		Kind:      domain.StatusKind(rec.Status),
		EndDate:   rec.EndDate,
		ReturnDay: rec.ReturnDay,
	}
}
