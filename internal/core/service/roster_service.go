package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
)

// RosterService implements player registry operations.
type RosterService struct {
	players     ports.PlayerRepository
	supervisors ports.SupervisorRepository
	strictIDs   bool
	// allowUnknownSupervisor skips the referential check on add,
	// reproducing the permissive legacy behaviour.
	allowUnknownSupervisor bool
	log                    zerolog.Logger
}

func NewRosterService(
	players ports.PlayerRepository,
	supervisors ports.SupervisorRepository,
	strictIDs bool,
	allowUnknownSupervisor bool,
	log zerolog.Logger,
) *RosterService {
	return &RosterService{
		players:                players,
		supervisors:            supervisors,
		strictIDs:              strictIDs,
		allowUnknownSupervisor: allowUnknownSupervisor,
		log:                    log,
	}
}

// AddPlayer normalizes the SteamID and registers the player. Duplicate
// SteamIDs are rejected without touching the registry.
func (s *RosterService) AddPlayer(ctx context.Context, input ports.AddPlayerInput) (*domain.Player, error) {
	if input.SteamID == "" || input.Name == "" || input.Discord == "" || input.Supervisor == "" {
		return nil, domain.ErrMissingField
	}

	steamID, err := domain.NormalizeSteamID(input.SteamID, s.strictIDs)
	if err != nil {
		return nil, err
	}

	if !s.allowUnknownSupervisor {
		known, err := s.supervisors.Exists(ctx, input.Supervisor)
		if err != nil {
			return nil, err
		}
		if !known {
			return nil, domain.ErrUnknownSupervisor
		}
	}

	player := &domain.Player{
		SteamID:    steamID,
		Name:       input.Name,
		Discord:    input.Discord,
		Supervisor: input.Supervisor,
	}
	if err := s.players.Create(ctx, player); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("steam_id", steamID).
		Str("name", input.Name).
		Str("supervisor", input.Supervisor).
		Msg("player added")
	return player, nil
}

// RemovePlayer deletes the player with the given SteamID (any accepted
// encoding).
func (s *RosterService) RemovePlayer(ctx context.Context, steamID string) error {
	id, err := domain.NormalizeSteamID(steamID, s.strictIDs)
	if err != nil {
		return err
	}
	if err := s.players.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("steam_id", id).Msg("player removed")
	return nil
}

func (s *RosterService) ListPlayers(ctx context.Context, supervisor string) ([]domain.Player, error) {
	return s.players.List(ctx, supervisor)
}
