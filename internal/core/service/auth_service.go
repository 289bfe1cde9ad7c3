package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
)

// AuthService implements login and supervisor account management.
type AuthService struct {
	users       ports.UserRepository
	supervisors ports.SupervisorRepository
	jwtSecret   string
	tokenTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	supervisors ports.SupervisorRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:       users,
		supervisors: supervisors,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

// Login verifies the credentials and returns a signed token plus the
// stored user. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", username).Str("role", string(user.Role)).Msg("operator logged in")
	return token, user, nil
}

// RegisterSupervisor creates the user account and the supervisor list
// entry as one operation. A failed list insert rolls the account back.
func (s *AuthService) RegisterSupervisor(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleSupervisor,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.supervisors.Add(ctx, username); err != nil {
		if delErr := s.users.Delete(ctx, username); delErr != nil {
			s.log.Error().Err(delErr).Str("username", username).Msg("rollback of supervisor account failed")
		}
		return nil, err
	}

	s.log.Info().Str("username", username).Msg("supervisor registered")
	return user, nil
}

// RemoveSupervisor deletes the list entry and the user account. Players
// owned by the supervisor are left in place.
func (s *AuthService) RemoveSupervisor(ctx context.Context, username string) error {
	if err := s.supervisors.Remove(ctx, username); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, username); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	s.log.Info().Str("username", username).Msg("supervisor removed")
	return nil
}

func (s *AuthService) ListSupervisors(ctx context.Context) ([]string, error) {
	return s.supervisors.List(ctx)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
