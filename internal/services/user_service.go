package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/avaldivia/childbot-be/internal/models"
	"github.com/avaldivia/childbot-be/internal/store"
)

// ErrInvalidCredentials is returned when a login attempt fails, whether the
// username is unknown or the password does not match. Callers map it to 401.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	AuthenticateUser(ctx context.Context, username, password string) (models.User, error)
	GetProfile(ctx context.Context, username string) (models.User, error)
	UpdatePalette(ctx context.Context, username string, palette models.ColorPalette) error
}

// UserService provides authentication and palette profile logic on top of
// the credential store.
type UserService struct {
	store  store.UserStore
	events EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(st store.UserStore, events EventServiceProvider) *UserService {
	return &UserService{store: st, events: events}
}

// AuthenticateUser verifies a username/password pair against the stored
// bcrypt hash. Unknown usernames, wrong passwords, and malformed stored
// hashes all yield ErrInvalidCredentials.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.recordEvent(ctx, EventLoginFailed, "warning", fmt.Sprintf("failed login for %q", username), nil)
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		s.recordEvent(ctx, EventLoginFailed, "warning", fmt.Sprintf("failed login for %q", username), nil)
		return models.User{}, ErrInvalidCredentials
	}

	s.recordEvent(ctx, EventLogin, "info", "user logged in", &user.Username)

	// Don't hand the hash around after verification
	user.HashedPassword = ""
	return user, nil
}

// GetProfile retrieves a user's palette profile by username.
func (s *UserService) GetProfile(ctx context.Context, username string) (models.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	user.HashedPassword = ""
	return user, nil
}

// UpdatePalette writes all four color fields for the given username in a
// single statement. Returns store.ErrNotFound for unknown usernames.
func (s *UserService) UpdatePalette(ctx context.Context, username string, palette models.ColorPalette) error {
	if err := s.store.UpdatePalette(ctx, username, palette); err != nil {
		return err
	}
	s.recordEvent(ctx, EventPaletteUpdated, "info", "palette updated", &username)
	return nil
}

// recordEvent logs audit-trail failures instead of failing the request.
func (s *UserService) recordEvent(ctx context.Context, eventType, level, message string, username *string) {
	if err := s.events.CreateEvent(ctx, eventType, level, message, username); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("Failed to record event")
	}
}
