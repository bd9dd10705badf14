package models

import (
	"time"

	"github.com/google/uuid"
)

// Button styles accepted on banner buttons.
const (
	ButtonStylePrimary   = "primary"
	ButtonStyleSecondary = "secondary"
	ButtonStyleOutline   = "outline"
)

// MaxBannerButtons caps the modern button list on a banner.
const MaxBannerButtons = 3

// BannerButton is one entry of a banner's modern button list.
type BannerButton struct {
	Text  string `json:"text" validate:"required"`
	URL   string `json:"url" validate:"required"`
	Style string `json:"style" validate:"required,oneof=primary secondary outline"`
}

// Banner is a hero-section slide. ButtonText/ButtonURL are the legacy
// single button kept for rows written before the buttons list existed.
type Banner struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Subtitle        *string        `json:"subtitle,omitempty"`
	ImageURL        *string        `json:"image_url,omitempty"`
	ButtonText      *string        `json:"button_text,omitempty"`
	ButtonURL       *string        `json:"button_url,omitempty"`
	Buttons         []BannerButton `json:"buttons,omitempty"`
	BackgroundColor string         `json:"background_color"`
	SortOrder       int            `json:"sort_order"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
