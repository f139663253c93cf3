package store

import (
	"context"
	"sync"

	"github.com/avaldivia/childbot-be/internal/models"
)

// MemoryStore is a map-backed UserStore used as the test double for the
// Postgres implementation.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryStore creates a MemoryStore pre-populated with the given users.
func NewMemoryStore(users ...models.User) *MemoryStore {
	m := &MemoryStore{users: make(map[string]models.User, len(users))}
	for _, u := range users {
		m.users[u.Username] = u
	}
	return m
}

func (m *MemoryStore) GetByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (m *MemoryStore) UpdatePalette(_ context.Context, username string, palette models.ColorPalette) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return ErrNotFound
	}
	user.PrimaryColor = palette.PrimaryColor
	user.SecondaryColor = palette.SecondaryColor
	user.AccentColor = palette.AccentColor
	user.BackgroundColor = palette.BackgroundColor
	m.users[username] = user
	return nil
}
