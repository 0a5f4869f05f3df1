package dto

import (
	"time"

	"github.com/google/uuid"
)

// AlertRead is a user-facing notification row.
type AlertRead struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// AlertCreate is a DTO for inserting an alert.
type AlertCreate struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Type     string
	Title    string
	Message  string
	Severity string
}
