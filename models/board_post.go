package models

import (
	"time"

	"github.com/google/uuid"
)

// BoardPost is one entry in a board_* table. Pinned posts sort before the
// rest; within each group newest first.
type BoardPost struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content,omitempty"`
	Author    string    `json:"author"`
	IsPinned  bool      `json:"is_pinned"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
