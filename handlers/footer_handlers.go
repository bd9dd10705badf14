package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// FooterSettingsRequest is the upsert payload for the footer singleton.
type FooterSettingsRequest struct {
	CompanyName         *string               `json:"company_name" validate:"omitempty,min=1"`
	LogoURL             *string               `json:"logo_url"`
	LogoLinkURL         *string               `json:"logo_link_url"`
	Address             *string               `json:"address"`
	Phone               *string               `json:"phone"`
	BusinessHours       *string               `json:"business_hours"`
	QRCodes             []models.NamedImage   `json:"qr_codes" validate:"omitempty,dive"`
	AppDownloadText     *string               `json:"app_download_text"`
	AppDownloadSubtitle *string               `json:"app_download_subtitle"`
	AppStoreLinks       []models.AppStoreLink `json:"app_store_links" validate:"omitempty,dive"`
	FeatureImageURL     *string               `json:"feature_image_url" validate:"omitempty,url"`
	GalleryImages       []models.NamedImage   `json:"gallery_images" validate:"omitempty,dive"`
	BackgroundColor     *string               `json:"background_color"`
}

func (r *FooterSettingsRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.CompanyName != nil {
		data["company_name"] = *r.CompanyName
	}
	if r.LogoURL != nil {
		data["logo_url"] = *r.LogoURL
	}
	if r.LogoLinkURL != nil {
		data["logo_link_url"] = *r.LogoLinkURL
	}
	if r.Address != nil {
		data["address"] = *r.Address
	}
	if r.Phone != nil {
		data["phone"] = *r.Phone
	}
	if r.BusinessHours != nil {
		data["business_hours"] = *r.BusinessHours
	}
	if r.QRCodes != nil {
		data["qr_codes"] = r.QRCodes
	}
	if r.AppDownloadText != nil {
		data["app_download_text"] = *r.AppDownloadText
	}
	if r.AppDownloadSubtitle != nil {
		data["app_download_subtitle"] = *r.AppDownloadSubtitle
	}
	if r.AppStoreLinks != nil {
		data["app_store_links"] = r.AppStoreLinks
	}
	if r.FeatureImageURL != nil {
		data["feature_image_url"] = *r.FeatureImageURL
	}
	if r.GalleryImages != nil {
		data["gallery_images"] = r.GalleryImages
	}
	if r.BackgroundColor != nil {
		data["background_color"] = *r.BackgroundColor
	}
	return data
}

// GetFooter godoc
// @Summary Fetch footer settings
// @Description Returns the footer singleton; hardcoded defaults when the table is empty or unreachable.
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /footer [get]
func (h *ApplicationHandler) GetFooter(c *fiber.Ctx) error {
	settings, err := store.GetSingleton[models.FooterSettings](h.Store, store.TableFooterSettings)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.Logger.WithError(err).Error("Error fetching footer settings")
		}
		fallback := models.DefaultFooterSettings()
		settings = &fallback
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, settings)
}

// UpsertFooter writes the footer singleton.
func (h *ApplicationHandler) UpsertFooter(c *fiber.Ctx) error {
	req := new(FooterSettingsRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse footer settings JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.CompanyName == nil || *req.CompanyName == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'company_name' is required")
	}

	settings, err := store.UpsertSingleton[models.FooterSettings](h.Store, store.TableFooterSettings, req.record())
	if err != nil {
		return h.respondStoreError(c, err, "footer settings")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, settings)
}
