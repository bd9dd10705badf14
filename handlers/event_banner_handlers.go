package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// eventRotateIntervalMS is the auto-advance cadence of the event strip.
const eventRotateIntervalMS = 6000

// EventBannerRequest is the write payload for event banners.
type EventBannerRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	LinkURL     *string `json:"link_url"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`

	ExpectedUpdatedAt *time.Time `json:"expected_updated_at"`
}

func (r *EventBannerRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.Title != nil {
		data["title"] = *r.Title
	}
	if r.Description != nil {
		data["description"] = *r.Description
	}
	if r.ImageURL != nil {
		data["image_url"] = *r.ImageURL
	}
	if r.LinkURL != nil {
		data["link_url"] = *r.LinkURL
	}
	if r.SortOrder != nil {
		data["sort_order"] = *r.SortOrder
	}
	if r.IsActive != nil {
		data["is_active"] = *r.IsActive
	}
	return data
}

// GetEventBanners godoc
// @Summary List active event banners
// @Description Returns active event banners ascending by sort order, plus the strip rotation interval.
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /event-banners [get]
func (h *ApplicationHandler) GetEventBanners(c *fiber.Ctx) error {
	eventBanners, err := store.ListOrdered[models.EventBanner](h.Store, store.TableEventBanners, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching event banners")
		eventBanners = []models.EventBanner{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"items":              eventBanners,
		"rotate_interval_ms": eventRotateIntervalMS,
	})
}

// AdminListEventBanners returns every event banner, inactive included.
func (h *ApplicationHandler) AdminListEventBanners(c *fiber.Ctx) error {
	eventBanners, err := store.ListOrdered[models.EventBanner](h.Store, store.TableEventBanners, false)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching event banners for admin")
		eventBanners = []models.EventBanner{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, eventBanners)
}

// CreateEventBanner creates an event banner.
func (h *ApplicationHandler) CreateEventBanner(c *fiber.Ctx) error {
	req := new(EventBannerRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse event banner JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.Title == nil || *req.Title == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'title' is required")
	}

	eventBanner, err := store.Insert[models.EventBanner](h.Store, store.TableEventBanners, req.record())
	if err != nil {
		return h.respondStoreError(c, err, "event banner")
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, eventBanner)
}

// UpdateEventBanner applies a partial update to one event banner.
func (h *ApplicationHandler) UpdateEventBanner(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(EventBannerRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse event banner JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}

	eventBanner, err := store.UpdateByID[models.EventBanner](h.Store, store.TableEventBanners, id, req.record(), req.ExpectedUpdatedAt)
	if err != nil {
		return h.respondStoreError(c, err, "event banner")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, eventBanner)
}

// DeleteEventBanner removes one event banner.
func (h *ApplicationHandler) DeleteEventBanner(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Store.DeleteByID(store.TableEventBanners, id); err != nil {
		return h.respondStoreError(c, err, "event banner")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
