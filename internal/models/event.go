package models

import "time"

// Event is an audit-trail entry: logins, palette changes, chat relays.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Username  *string   `json:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
