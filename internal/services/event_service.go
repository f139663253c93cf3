package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/avaldivia/childbot-be/internal/models"
)

// Event types recorded by the services.
const (
	EventLogin          = "user.login"
	EventLoginFailed    = "user.login_failed"
	EventPaletteUpdated = "user.palette_updated"
	EventChatRelayed    = "chat.relayed"
)

// EventServiceProvider defines the interface for the audit event log.
type EventServiceProvider interface {
	CreateEvent(ctx context.Context, eventType, level, message string, username *string) error
	GetRecentEvents(ctx context.Context, limit int) ([]models.Event, error)
}

// EventService writes and reads the events audit table.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// CreateEvent logs a new event to the database.
func (s *EventService) CreateEvent(ctx context.Context, eventType, level, message string, username *string) error {
	query := `INSERT INTO events (id, type, level, message, username) VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query, uuid.New().String(), eventType, level, message, username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetRecentEvents returns the most recent events, newest first.
func (s *EventService) GetRecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	query := `
		SELECT id, type, level, message, username, created_at
		FROM events
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Type, &e.Level, &e.Message, &e.Username, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
