package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettings is the site-wide singleton: name, logo and the two header
// call-to-action buttons.
type SiteSettings struct {
	ID                  uuid.UUID `json:"id"`
	SiteName            string    `json:"site_name"`
	LogoURL             *string   `json:"logo_url,omitempty"`
	PrimaryButtonText   string    `json:"primary_button_text"`
	PrimaryButtonURL    string    `json:"primary_button_url"`
	SecondaryButtonText string    `json:"secondary_button_text"`
	SecondaryButtonURL  string    `json:"secondary_button_url"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the hardcoded fallback used when the
// site_settings table is empty or unreachable.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:            "승승통신",
		PrimaryButtonText:   "가입신청",
		PrimaryButtonURL:    "#signup",
		SecondaryButtonText: "고객센터",
		SecondaryButtonURL:  "#contact",
	}
}
