package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// PricingPlanRequest is the write payload for pricing plans. Price
// strings are display text, not parsed amounts.
type PricingPlanRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1"`
	Price         *string  `json:"price" validate:"omitempty,min=1"`
	OriginalPrice *string  `json:"original_price"`
	Tag           *string  `json:"tag"`
	TagColor      *string  `json:"tag_color"`
	Description   *string  `json:"description"`
	Features      []string `json:"features"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,url"`
	SortOrder     *int     `json:"sort_order"`
	IsActive      *bool    `json:"is_active"`

	ExpectedUpdatedAt *time.Time `json:"expected_updated_at"`
}

func (r *PricingPlanRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.Name != nil {
		data["name"] = *r.Name
	}
	if r.Price != nil {
		data["price"] = *r.Price
	}
	if r.OriginalPrice != nil {
		data["original_price"] = *r.OriginalPrice
	}
	if r.Tag != nil {
		data["tag"] = *r.Tag
	}
	if r.TagColor != nil {
		data["tag_color"] = *r.TagColor
	}
	if r.Description != nil {
		data["description"] = *r.Description
	}
	if r.Features != nil {
		data["features"] = r.Features
	}
	if r.ImageURL != nil {
		data["image_url"] = *r.ImageURL
	}
	if r.SortOrder != nil {
		data["sort_order"] = *r.SortOrder
	}
	if r.IsActive != nil {
		data["is_active"] = *r.IsActive
	}
	return data
}

// GetPricingPlans godoc
// @Summary List active pricing plans
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /pricing-plans [get]
func (h *ApplicationHandler) GetPricingPlans(c *fiber.Ctx) error {
	plans, err := store.ListOrdered[models.PricingPlan](h.Store, store.TablePricingPlans, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching pricing plans")
		plans = []models.PricingPlan{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, plans)
}

// AdminListPricingPlans returns every plan, inactive included.
func (h *ApplicationHandler) AdminListPricingPlans(c *fiber.Ctx) error {
	plans, err := store.ListOrdered[models.PricingPlan](h.Store, store.TablePricingPlans, false)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching pricing plans for admin")
		plans = []models.PricingPlan{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, plans)
}

// CreatePricingPlan creates a plan; name and price are required.
func (h *ApplicationHandler) CreatePricingPlan(c *fiber.Ctx) error {
	req := new(PricingPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse pricing plan JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.Name == nil || *req.Name == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'name' is required")
	}
	if req.Price == nil || *req.Price == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'price' is required")
	}

	plan, err := store.Insert[models.PricingPlan](h.Store, store.TablePricingPlans, req.record())
	if err != nil {
		return h.respondStoreError(c, err, "pricing plan")
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, plan)
}

// UpdatePricingPlan applies a partial update to one plan.
func (h *ApplicationHandler) UpdatePricingPlan(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(PricingPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse pricing plan JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}

	plan, err := store.UpdateByID[models.PricingPlan](h.Store, store.TablePricingPlans, id, req.record(), req.ExpectedUpdatedAt)
	if err != nil {
		return h.respondStoreError(c, err, "pricing plan")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, plan)
}

// DeletePricingPlan removes one plan.
func (h *ApplicationHandler) DeletePricingPlan(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Store.DeleteByID(store.TablePricingPlans, id); err != nil {
		return h.respondStoreError(c, err, "pricing plan")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
