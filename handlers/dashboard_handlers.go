package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/utils"
)

// GetDashboard godoc
// @Summary Admin dashboard summary
// @Description Returns the row count of every content table plus each registered board.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/dashboard [get]
func (h *ApplicationHandler) GetDashboard(c *fiber.Ctx) error {
	counts := fiber.Map{}
	for _, table := range store.ContentTables {
		count, err := h.Store.Count(table)
		if err != nil {
			h.Logger.WithError(err).Errorf("Error counting %s", table)
			count = 0
		}
		counts[table] = count
	}

	boards := fiber.Map{}
	for _, slug := range h.Boards.Slugs() {
		table, _ := h.Boards.TableForSlug(slug)
		count, err := h.Store.Count(table)
		if err != nil {
			h.Logger.WithError(err).Errorf("Error counting %s", table)
			count = 0
		}
		boards[slug] = count
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"tables": counts,
		"boards": boards,
	})
}
