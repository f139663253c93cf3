// Package store is the credential store: the users table keyed by username.
package store

import (
	"context"
	"errors"

	"github.com/avaldivia/childbot-be/internal/models"
)

// ErrNotFound is returned when no row exists for the requested username.
var ErrNotFound = errors.New("user not found")

// UserStore abstracts the users table so tests can substitute an in-memory
// implementation.
type UserStore interface {
	// GetByUsername returns the full row, including the password hash.
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// UpdatePalette writes the four color fields in one statement.
	// Returns ErrNotFound if the username has no row; no partial updates.
	UpdatePalette(ctx context.Context, username string, palette models.ColorPalette) error
}
