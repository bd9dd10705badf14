package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// SiteSettingsRequest is the upsert payload for the site-wide singleton.
type SiteSettingsRequest struct {
	SiteName            *string `json:"site_name" validate:"omitempty,min=1"`
	LogoURL             *string `json:"logo_url"`
	PrimaryButtonText   *string `json:"primary_button_text"`
	PrimaryButtonURL    *string `json:"primary_button_url"`
	SecondaryButtonText *string `json:"secondary_button_text"`
	SecondaryButtonURL  *string `json:"secondary_button_url"`
}

func (r *SiteSettingsRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.SiteName != nil {
		data["site_name"] = *r.SiteName
	}
	if r.LogoURL != nil {
		data["logo_url"] = *r.LogoURL
	}
	if r.PrimaryButtonText != nil {
		data["primary_button_text"] = *r.PrimaryButtonText
	}
	if r.PrimaryButtonURL != nil {
		data["primary_button_url"] = *r.PrimaryButtonURL
	}
	if r.SecondaryButtonText != nil {
		data["secondary_button_text"] = *r.SecondaryButtonText
	}
	if r.SecondaryButtonURL != nil {
		data["secondary_button_url"] = *r.SecondaryButtonURL
	}
	return data
}

// GetSiteSettings godoc
// @Summary Fetch site settings
// @Description Returns the site settings singleton; hardcoded defaults when the table is empty or unreachable.
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /site-settings [get]
func (h *ApplicationHandler) GetSiteSettings(c *fiber.Ctx) error {
	settings, err := store.GetSingleton[models.SiteSettings](h.Store, store.TableSiteSettings)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.Logger.WithError(err).Error("Error fetching site settings")
		}
		fallback := models.DefaultSiteSettings()
		settings = &fallback
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, settings)
}

// UpsertSiteSettings writes the singleton: first write inserts the row,
// later writes update it in place.
func (h *ApplicationHandler) UpsertSiteSettings(c *fiber.Ctx) error {
	req := new(SiteSettingsRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse site settings JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.SiteName == nil || *req.SiteName == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'site_name' is required")
	}

	settings, err := store.UpsertSingleton[models.SiteSettings](h.Store, store.TableSiteSettings, req.record())
	if err != nil {
		return h.respondStoreError(c, err, "site settings")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, settings)
}
