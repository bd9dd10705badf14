package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// ServiceCardRequest is the write payload for service cards. IconURL may
// be an emoji/text glyph or an image URL, stored verbatim.
type ServiceCardRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	IconURL   *string `json:"icon_url"`
	LinkURL   *string `json:"link_url" validate:"omitempty,url"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`

	ExpectedUpdatedAt *time.Time `json:"expected_updated_at"`
}

func (r *ServiceCardRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.Title != nil {
		data["title"] = *r.Title
	}
	if r.IconURL != nil {
		data["icon_url"] = *r.IconURL
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

// serviceCardView decorates a card with the glyph-vs-image hint the grid
// renderer needs.
type serviceCardView struct {
	models.ServiceCard
	IconIsImage bool `json:"icon_is_image"`
}

// GetServiceCards godoc
// @Summary List active service cards
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /service-cards [get]
func (h *ApplicationHandler) GetServiceCards(c *fiber.Ctx) error {
	cards, err := store.ListOrdered[models.ServiceCard](h.Store, store.TableServiceCards, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching service cards")
		cards = []models.ServiceCard{}
	}
	views := make([]serviceCardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, serviceCardView{ServiceCard: card, IconIsImage: card.IconIsImage()})
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, views)
}

// AdminListServiceCards returns every service card, inactive included.
func (h *ApplicationHandler) AdminListServiceCards(c *fiber.Ctx) error {
	cards, err := store.ListOrdered[models.ServiceCard](h.Store, store.TableServiceCards, false)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching service cards for admin")
		cards = []models.ServiceCard{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, cards)
}

// CreateServiceCard creates a card.
func (h *ApplicationHandler) CreateServiceCard(c *fiber.Ctx) error {
	req := new(ServiceCardRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse service card JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.Title == nil || *req.Title == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'title' is required")
	}

	card, err := store.Insert[models.ServiceCard](h.Store, store.TableServiceCards, req.record())
	if err != nil {
		return h.respondStoreError(c, err, "service card")
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, card)
}

// UpdateServiceCard applies a partial update to one card.
func (h *ApplicationHandler) UpdateServiceCard(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(ServiceCardRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse service card JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}

	card, err := store.UpdateByID[models.ServiceCard](h.Store, store.TableServiceCards, id, req.record(), req.ExpectedUpdatedAt)
	if err != nil {
		return h.respondStoreError(c, err, "service card")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, card)
}

// DeleteServiceCard removes one card.
func (h *ApplicationHandler) DeleteServiceCard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Store.DeleteByID(store.TableServiceCards, id); err != nil {
		return h.respondStoreError(c, err, "service card")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
