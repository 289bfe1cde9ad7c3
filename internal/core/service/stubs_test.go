package service

import (
	"context"
	"slices"

	"github.com/gameops/ticket-board/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	r.users[user.Username] = user
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

type stubPlayerRepo struct {
	players map[string]*domain.Player
}

func newStubPlayerRepo() *stubPlayerRepo {
	return &stubPlayerRepo{players: make(map[string]*domain.Player)}
}

func (r *stubPlayerRepo) FindBySteamID(_ context.Context, steamID string) (*domain.Player, error) {
	p, ok := r.players[steamID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return p, nil
}

func (r *stubPlayerRepo) Create(_ context.Context, player *domain.Player) error {
	if _, exists := r.players[player.SteamID]; exists {
		return domain.ErrPlayerExists
	}
	r.players[player.SteamID] = player
	return nil
}

func (r *stubPlayerRepo) Delete(_ context.Context, steamID string) error {
	if _, ok := r.players[steamID]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(r.players, steamID)
	return nil
}

func (r *stubPlayerRepo) List(_ context.Context, supervisor string) ([]domain.Player, error) {
	var out []domain.Player
	for _, p := range r.players {
		if supervisor != "" && p.Supervisor != supervisor {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

type stubSupervisorRepo struct {
	names []string
}

func (r *stubSupervisorRepo) List(_ context.Context) ([]string, error) {
	return slices.Clone(r.names), nil
}

func (r *stubSupervisorRepo) Exists(_ context.Context, username string) (bool, error) {
	return slices.Contains(r.names, username), nil
}

func (r *stubSupervisorRepo) Add(_ context.Context, username string) error {
	if slices.Contains(r.names, username) {
		return domain.ErrSupervisorExists
	}
	r.names = append(r.names, username)
	return nil
}

func (r *stubSupervisorRepo) Remove(_ context.Context, username string) error {
	i := slices.Index(r.names, username)
	if i < 0 {
		return domain.ErrSupervisorNotFound
	}
	r.names = slices.Delete(r.names, i, i+1)
	return nil
}

type stubStatusRepo struct {
	statuses map[string]*domain.Status
}

func newStubStatusRepo() *stubStatusRepo {
	return &stubStatusRepo{statuses: make(map[string]*domain.Status)}
}

func (r *stubStatusRepo) Find(_ context.Context, steamID string) (*domain.Status, error) {
	st, ok := r.statuses[steamID]
	if !ok {
		return nil, domain.ErrStatusNotFound
	}
	return st, nil
}

func (r *stubStatusRepo) Set(_ context.Context, status *domain.Status) error {
	r.statuses[status.SteamID] = status
	return nil
}

func (r *stubStatusRepo) Delete(_ context.Context, steamID string) error {
	if _, ok := r.statuses[steamID]; !ok {
		return domain.ErrStatusNotFound
	}
	delete(r.statuses, steamID)
	return nil
}

func (r *stubStatusRepo) DeleteBatch(_ context.Context, steamIDs []string) error {
	for _, id := range steamIDs {
		delete(r.statuses, id)
	}
	return nil
}

func (r *stubStatusRepo) List(_ context.Context) ([]domain.Status, error) {
	var out []domain.Status
	for _, st := range r.statuses {
		out = append(out, *st)
	}
	return out, nil
}
