package ports

import (
	"context"

	"github.com/gameops/ticket-board/internal/core/domain"
)

// AuthService handles operator authentication and supervisor accounts.
// Registering a supervisor creates both the user account and the roster
// entry; removal deletes both.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	RegisterSupervisor(ctx context.Context, username, password string) (*domain.User, error)
	RemoveSupervisor(ctx context.Context, username string) error
	ListSupervisors(ctx context.Context) ([]string, error)
}
