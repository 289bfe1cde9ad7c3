package ports

import (
	"context"
	"time"

	"github.com/gameops/ticket-board/internal/core/domain"
)

// SetStatusInput carries an exemption assignment. EndDate is YYYY-MM-DD.
type SetStatusInput struct {
	SteamID   string
	Kind      domain.StatusKind
	EndDate   string
	ReturnDay string
}

// StatusService manages exemption statuses and their expiry sweep.
type StatusService interface {
	SetStatus(ctx context.Context, input SetStatusInput) (*domain.Status, error)
	// ClearStatus removes the player's status; clearing an absent status
	// is a no-op.
	ClearStatus(ctx context.Context, steamID string) error
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	// SweepExpired removes every status whose end date is strictly before
	// today and returns the affected SteamIDs. Idempotent.
	SweepExpired(ctx context.Context, today time.Time) ([]string, error)
}
