package ports

import (
	"context"

	"github.com/gameops/ticket-board/internal/core/domain"
)

// UserRepository persists operator accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, username string) error
}

// PlayerRepository persists players keyed by canonical SteamID.
type PlayerRepository interface {
	FindBySteamID(ctx context.Context, steamID string) (*domain.Player, error)
	Create(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, steamID string) error
	// List returns players, optionally filtered to one supervisor when
	// supervisor is non-empty.
	List(ctx context.Context, supervisor string) ([]domain.Player, error)
}

// SupervisorRepository persists the ordered supervisor list.
type SupervisorRepository interface {
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, username string) (bool, error)
	Add(ctx context.Context, username string) error
	Remove(ctx context.Context, username string) error
}

// StatusRepository persists exemption statuses, at most one per SteamID.
type StatusRepository interface {
	Find(ctx context.Context, steamID string) (*domain.Status, error)
	Set(ctx context.Context, status *domain.Status) error
	Delete(ctx context.Context, steamID string) error
	DeleteBatch(ctx context.Context, steamIDs []string) error
	List(ctx context.Context) ([]domain.Status, error)
}
