package models

import (
	"time"

	"github.com/google/uuid"
)

// Menu item types. Board items point at a registered board_* table.
const (
	MenuTypeLink     = "link"
	MenuTypeBoard    = "board"
	MenuTypeDropdown = "dropdown"
)

// MenuItem is one entry in the site navigation.
type MenuItem struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	URL            *string   `json:"url,omitempty"`
	SortOrder      int       `json:"sort_order"`
	IsActive       bool      `json:"is_active"`
	HasDropdown    bool      `json:"has_dropdown"`
	MenuType       string    `json:"menu_type"`
	BoardTableName *string   `json:"board_table_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultMenuItems is the fallback navigation when menu_items cannot be
// fetched: a single home link.
func DefaultMenuItems() []MenuItem {
	home := "/"
	return []MenuItem{
		{Title: "홈", URL: &home, SortOrder: 1, IsActive: true, MenuType: MenuTypeLink},
	}
}
