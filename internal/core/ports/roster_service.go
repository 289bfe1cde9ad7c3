package ports

import (
	"context"

	"github.com/gameops/ticket-board/internal/core/domain"
)

// AddPlayerInput carries the data needed to register a player. SteamID
// may be any of the accepted encodings; it is normalized before storage.
type AddPlayerInput struct {
	SteamID    string
	Name       string
	Discord    string
	Supervisor string
}

// RosterService defines player registry operations.
type RosterService interface {
	AddPlayer(ctx context.Context, input AddPlayerInput) (*domain.Player, error)
	RemovePlayer(ctx context.Context, steamID string) error
	ListPlayers(ctx context.Context, supervisor string) ([]domain.Player, error)
}
