package models

import (
	"time"

	"github.com/google/uuid"
)

// PricingPlan is one card in the pricing section. Price strings are
// display text (e.g. "월 39,000원"), not amounts.
type PricingPlan struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         string    `json:"price"`
	OriginalPrice *string   `json:"original_price,omitempty"`
	Tag           *string   `json:"tag,omitempty"`
	TagColor      string    `json:"tag_color"`
	Description   *string   `json:"description,omitempty"`
	Features      []string  `json:"features,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	SortOrder     int       `json:"sort_order"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
