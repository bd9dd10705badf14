package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// heroRotateIntervalMS is the auto-advance cadence the front end applies
// to the hero carousel.
const heroRotateIntervalMS = 5000

// BannerRequest is the write payload for banners. All fields are
// pointers so the same shape serves create (missing required fields
// rejected explicitly) and partial update (nil means "leave unchanged").
type BannerRequest struct {
	Title           *string               `json:"title" validate:"omitempty,min=1"`
	Subtitle        *string               `json:"subtitle"`
	ImageURL        *string               `json:"image_url" validate:"omitempty,url"`
	ButtonText      *string               `json:"button_text"`
	ButtonURL       *string               `json:"button_url"`
	Buttons         []models.BannerButton `json:"buttons" validate:"omitempty,max=3,dive"`
	BackgroundColor *string               `json:"background_color"`
	SortOrder       *int                  `json:"sort_order"`
	IsActive        *bool                 `json:"is_active"`

	// ExpectedUpdatedAt makes an update conditional; stale values get 409.
	ExpectedUpdatedAt *time.Time `json:"expected_updated_at"`
}

func (r *BannerRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.Title != nil {
		data["title"] = *r.Title
	}
	if r.Subtitle != nil {
		data["subtitle"] = *r.Subtitle
	}
	if r.ImageURL != nil {
		data["image_url"] = *r.ImageURL
	}
	if r.ButtonText != nil {
		data["button_text"] = *r.ButtonText
	}
	if r.ButtonURL != nil {
		data["button_url"] = *r.ButtonURL
	}
	if r.Buttons != nil {
		data["buttons"] = r.Buttons
	}
	if r.BackgroundColor != nil {
		data["background_color"] = *r.BackgroundColor
	}
	if r.SortOrder != nil {
		data["sort_order"] = *r.SortOrder
	}
	if r.IsActive != nil {
		data["is_active"] = *r.IsActive
	}
	return data
}

// GetBanners godoc
// @Summary List active hero banners
// @Description Returns active banners ascending by sort order, plus the carousel rotation interval.
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /banners [get]
func (h *ApplicationHandler) GetBanners(c *fiber.Ctx) error {
	banners, err := store.ListOrdered[models.Banner](h.Store, store.TableBanners, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching banners")
		banners = []models.Banner{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"items":              banners,
		"rotate_interval_ms": heroRotateIntervalMS,
	})
}

// AdminListBanners returns every banner, inactive rows included.
func (h *ApplicationHandler) AdminListBanners(c *fiber.Ctx) error {
	banners, err := store.ListOrdered[models.Banner](h.Store, store.TableBanners, false)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching banners for admin")
		banners = []models.Banner{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, banners)
}

// CreateBanner godoc
// @Summary Create a banner
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /admin/banners [post]
func (h *ApplicationHandler) CreateBanner(c *fiber.Ctx) error {
	req := new(BannerRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse banner JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.Title == nil || *req.Title == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'title' is required")
	}

	banner, err := store.Insert[models.Banner](h.Store, store.TableBanners, req.record())
	if err != nil {
		return h.respondStoreError(c, err, "banner")
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, banner)
}

// UpdateBanner applies a partial update to one banner.
func (h *ApplicationHandler) UpdateBanner(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(BannerRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse banner JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}

	banner, err := store.UpdateByID[models.Banner](h.Store, store.TableBanners, id, req.record(), req.ExpectedUpdatedAt)
	if err != nil {
		return h.respondStoreError(c, err, "banner")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, banner)
}

// DeleteBanner removes one banner. Deleting an already-deleted id
// succeeds.
func (h *ApplicationHandler) DeleteBanner(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Store.DeleteByID(store.TableBanners, id); err != nil {
		return h.respondStoreError(c, err, "banner")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
