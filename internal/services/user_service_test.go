package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avaldivia/childbot-be/internal/models"
	"github.com/avaldivia/childbot-be/internal/store"
)

// eventLogStub records event types instead of hitting the database.
type eventLogStub struct {
	mu    sync.Mutex
	types []string
}

func (s *eventLogStub) CreateEvent(_ context.Context, eventType, _, _ string, _ *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, eventType)
	return nil
}

func (s *eventLogStub) GetRecentEvents(context.Context, int) ([]models.Event, error) {
	return nil, nil
}

func (s *eventLogStub) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.types...)
}

func seededService(t *testing.T) (*UserService, *eventLogStub) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	st := store.NewMemoryStore(models.User{
		Username:        "student1",
		HashedPassword:  string(hash),
		PrimaryColor:    "#fff",
		SecondaryColor:  "#000",
		AccentColor:     "#f00",
		BackgroundColor: "#00f",
	})
	events := &eventLogStub{}
	return NewUserService(st, events), events
}

func TestAuthenticateUser_Success(t *testing.T) {
	t.Parallel()

	svc, events := seededService(t)

	user, err := svc.AuthenticateUser(context.Background(), "student1", "password123")
	require.NoError(t, err)
	require.Equal(t, "student1", user.Username)
	require.Empty(t, user.HashedPassword)
	require.Equal(t, []string{EventLogin}, events.recorded())
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, events := seededService(t)

	_, err := svc.AuthenticateUser(context.Background(), "student1", "letmein")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, []string{EventLoginFailed}, events.recorded())
}

func TestAuthenticateUser_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t)

	_, err := svc.AuthenticateUser(context.Background(), "nobody", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUser_MalformedStoredHash(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore(models.User{Username: "broken", HashedPassword: "not-a-bcrypt-hash"})
	svc := NewUserService(st, &eventLogStub{})

	_, err := svc.AuthenticateUser(context.Background(), "broken", "anything")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t)

	user, err := svc.GetProfile(context.Background(), "student1")
	require.NoError(t, err)
	require.Equal(t, "#fff", user.PrimaryColor)
	require.Equal(t, "#000", user.SecondaryColor)
	require.Equal(t, "#f00", user.AccentColor)
	require.Equal(t, "#00f", user.BackgroundColor)
	require.Empty(t, user.HashedPassword)

	_, err = svc.GetProfile(context.Background(), "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePalette_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, events := seededService(t)

	palette := models.ColorPalette{
		PrimaryColor:    "#111",
		SecondaryColor:  "#222",
		AccentColor:     "#333",
		BackgroundColor: "#444",
	}
	require.NoError(t, svc.UpdatePalette(context.Background(), "student1", palette))

	user, err := svc.GetProfile(context.Background(), "student1")
	require.NoError(t, err)
	require.Equal(t, palette.PrimaryColor, user.PrimaryColor)
	require.Equal(t, palette.SecondaryColor, user.SecondaryColor)
	require.Equal(t, palette.AccentColor, user.AccentColor)
	require.Equal(t, palette.BackgroundColor, user.BackgroundColor)
	require.Contains(t, events.recorded(), EventPaletteUpdated)
}

func TestUpdatePalette_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, events := seededService(t)

	err := svc.UpdatePalette(context.Background(), "nobody", models.ColorPalette{PrimaryColor: "#111"})
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Empty(t, events.recorded())

	// The seeded row is untouched
	user, err := svc.GetProfile(context.Background(), "student1")
	require.NoError(t, err)
	require.Equal(t, "#fff", user.PrimaryColor)
}
