package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gameops/ticket-board/internal/api/metrics"
	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
)

// StatusService manages exemption statuses.
type StatusService struct {
	statuses  ports.StatusRepository
	players   ports.PlayerRepository
	strictIDs bool
	log       zerolog.Logger
}

func NewStatusService(
	statuses ports.StatusRepository,
	players ports.PlayerRepository,
	strictIDs bool,
	log zerolog.Logger,
) *StatusService {
	return &StatusService{statuses: statuses, players: players, strictIDs: strictIDs, log: log}
}

// SetStatus assigns an exemption to a registered player, overwriting any
// existing one.
func (s *StatusService) SetStatus(ctx context.Context, input ports.SetStatusInput) (*domain.Status, error) {
	if input.SteamID == "" || input.Kind == "" || input.EndDate == "" {
		return nil, domain.ErrMissingField
	}
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidStatus, input.Kind)
	}

	steamID, err := domain.NormalizeSteamID(input.SteamID, s.strictIDs)
	if err != nil {
		return nil, err
	}
	if _, err := s.players.FindBySteamID(ctx, steamID); err != nil {
		return nil, err
	}

	status := &domain.Status{
		SteamID:   steamID,
		Kind:      input.Kind,
		EndDate:   input.EndDate,
		ReturnDay: input.ReturnDay,
	}
	if !status.ValidEndDate() {
		return nil, fmt.Errorf("%w: bad end date %q", domain.ErrInvalidStatus, input.EndDate)
	}

	if err := s.statuses.Set(ctx, status); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("steam_id", steamID).
		Str("kind", string(input.Kind)).
		Str("end_date", input.EndDate).
		Msg("status set")
	return status, nil
}

// ClearStatus removes the player's status. Clearing an absent status is a
// no-op.
func (s *StatusService) ClearStatus(ctx context.Context, steamID string) error {
	id, err := domain.NormalizeSteamID(steamID, s.strictIDs)
	if err != nil {
		return err
	}
	if err := s.statuses.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrStatusNotFound) {
			return nil
		}
		return err
	}

	s.log.Info().Str("steam_id", id).Msg("status cleared")
	return nil
}

func (s *StatusService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	return s.statuses.List(ctx)
}

// SweepExpired removes every status that ended strictly before today and
// returns the affected SteamIDs. Running it twice removes nothing new.
func (s *StatusService) SweepExpired(ctx context.Context, today time.Time) ([]string, error) {
	statuses, err := s.statuses.List(ctx)
	if err != nil {
		return nil, err
	}

	var expired []string
	for _, st := range statuses {
		if st.ExpiredBefore(today) {
			expired = append(expired, st.SteamID)
		}
	}
	if len(expired) == 0 {
		return nil, nil
	}

	if err := s.statuses.DeleteBatch(ctx, expired); err != nil {
		return nil, err
	}

	metrics.StatusesSweptTotal.Add(float64(len(expired)))
	s.log.Info().Strs("steam_ids", expired).Msg("expired statuses swept")
	return expired, nil
}
