package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ServiceCard is one tile in the services grid. IconURL holds either an
// emoji/text glyph or an image URL.
type ServiceCard struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	IconURL   *string   `json:"icon_url,omitempty"`
	LinkURL   *string   `json:"link_url,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IconIsImage reports whether the icon field is an image URL rather than a
// text glyph.
func (s ServiceCard) IconIsImage() bool {
	return s.IconURL != nil && strings.HasPrefix(*s.IconURL, "http")
}
