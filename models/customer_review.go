package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerReview is one testimonial card. Rating is 1-5 stars.
type CustomerReview struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text"`
	SortOrder    int       `json:"sort_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
