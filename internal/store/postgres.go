package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avaldivia/childbot-be/internal/models"
)

// PostgresStore implements UserStore against the users table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	query := `
		SELECT username, hashed_password, primary_color, secondary_color, accent_color, background_color
		FROM users
		WHERE username = $1`

	var user models.User
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username,
		&user.HashedPassword,
		&user.PrimaryColor,
		&user.SecondaryColor,
		&user.AccentColor,
		&user.BackgroundColor,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (s *PostgresStore) UpdatePalette(ctx context.Context, username string, palette models.ColorPalette) error {
	query := `
		UPDATE users
		SET primary_color = $1, secondary_color = $2, accent_color = $3, background_color = $4
		WHERE username = $5`

	res, err := s.db.ExecContext(ctx, query,
		palette.PrimaryColor,
		palette.SecondaryColor,
		palette.AccentColor,
		palette.BackgroundColor,
		username,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
