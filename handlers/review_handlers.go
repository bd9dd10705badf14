package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// CustomerReviewRequest is the write payload for reviews. Rating must be
// 1-5 when present; the range is checked in code because omitempty would
// treat an explicit zero as absent.
type CustomerReviewRequest struct {
	CustomerName *string `json:"customer_name" validate:"omitempty,min=1"`
	Rating       *int    `json:"rating"`
	ReviewText   *string `json:"review_text" validate:"omitempty,min=1"`
	SortOrder    *int    `json:"sort_order"`
	IsActive     *bool   `json:"is_active"`

	ExpectedUpdatedAt *time.Time `json:"expected_updated_at"`
}

func (r *CustomerReviewRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.CustomerName != nil {
		data["customer_name"] = *r.CustomerName
	}
	if r.Rating != nil {
		data["rating"] = *r.Rating
	}
	if r.ReviewText != nil {
		data["review_text"] = *r.ReviewText
	}
	if r.SortOrder != nil {
		data["sort_order"] = *r.SortOrder
	}
	if r.IsActive != nil {
		data["is_active"] = *r.IsActive
	}
	return data
}

func (r *CustomerReviewRequest) ratingInRange() bool {
	return r.Rating == nil || (*r.Rating >= 1 && *r.Rating <= 5)
}

// GetReviews godoc
// @Summary List active customer reviews
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /reviews [get]
func (h *ApplicationHandler) GetReviews(c *fiber.Ctx) error {
	reviews, err := store.ListOrdered[models.CustomerReview](h.Store, store.TableCustomerReviews, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching customer reviews")
		reviews = []models.CustomerReview{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, reviews)
}

// AdminListReviews returns every review, inactive included.
func (h *ApplicationHandler) AdminListReviews(c *fiber.Ctx) error {
	reviews, err := store.ListOrdered[models.CustomerReview](h.Store, store.TableCustomerReviews, false)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching customer reviews for admin")
		reviews = []models.CustomerReview{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, reviews)
}

// CreateReview creates a review; name, rating and text are required.
func (h *ApplicationHandler) CreateReview(c *fiber.Ctx) error {
	req := new(CustomerReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse review JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.CustomerName == nil || *req.CustomerName == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'customer_name' is required")
	}
	if req.Rating == nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'rating' is required")
	}
	if !req.ratingInRange() {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'rating' must be between 1 and 5")
	}
	if req.ReviewText == nil || *req.ReviewText == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'review_text' is required")
	}

	review, err := store.Insert[models.CustomerReview](h.Store, store.TableCustomerReviews, req.record())
	if err != nil {
		return h.respondStoreError(c, err, "review")
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, review)
}

// UpdateReview applies a partial update to one review.
func (h *ApplicationHandler) UpdateReview(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(CustomerReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse review JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if !req.ratingInRange() {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'rating' must be between 1 and 5")
	}

	review, err := store.UpdateByID[models.CustomerReview](h.Store, store.TableCustomerReviews, id, req.record(), req.ExpectedUpdatedAt)
	if err != nil {
		return h.respondStoreError(c, err, "review")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, review)
}

// DeleteReview removes one review.
func (h *ApplicationHandler) DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Store.DeleteByID(store.TableCustomerReviews, id); err != nil {
		return h.respondStoreError(c, err, "review")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
