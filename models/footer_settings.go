package models

import (
	"time"

	"github.com/google/uuid"
)

// NamedImage pairs a label with an image URL (QR codes, gallery entries).
type NamedImage struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

// AppStoreLink is one app-download button in the footer.
type AppStoreLink struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
	Icon string `json:"icon"`
}

// FooterSettings is the footer singleton: company block, app-download
// section, QR codes and gallery images.
type FooterSettings struct {
	ID                  uuid.UUID      `json:"id"`
	CompanyName         string         `json:"company_name"`
	LogoURL             *string        `json:"logo_url,omitempty"`
	LogoLinkURL         *string        `json:"logo_link_url,omitempty"`
	Address             *string        `json:"address,omitempty"`
	Phone               *string        `json:"phone,omitempty"`
	BusinessHours       *string        `json:"business_hours,omitempty"`
	QRCodes             []NamedImage   `json:"qr_codes,omitempty"`
	AppDownloadText     string         `json:"app_download_text"`
	AppDownloadSubtitle *string        `json:"app_download_subtitle,omitempty"`
	AppStoreLinks       []AppStoreLink `json:"app_store_links,omitempty"`
	FeatureImageURL     *string        `json:"feature_image_url,omitempty"`
	GalleryImages       []NamedImage   `json:"gallery_images,omitempty"`
	BackgroundColor     string         `json:"background_color"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// DefaultFooterSettings is the fallback used when the footer_settings
// table is empty or unreachable.
func DefaultFooterSettings() FooterSettings {
	return FooterSettings{
		CompanyName:     "승승통신",
		AppDownloadText: "편리함을 더하다",
		BackgroundColor: "#1f2937",
	}
}
