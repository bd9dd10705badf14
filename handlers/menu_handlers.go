package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/boards"
	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// MenuItemRequest is the write payload for menu items. Board-typed items
// must name a table from the board registry; the item's URL is derived
// from that table, never from the title.
type MenuItemRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=1"`
	URL            *string `json:"url"`
	SortOrder      *int    `json:"sort_order"`
	IsActive       *bool   `json:"is_active"`
	HasDropdown    *bool   `json:"has_dropdown"`
	MenuType       *string `json:"menu_type" validate:"omitempty,oneof=link board dropdown"`
	BoardTableName *string `json:"board_table_name"`

	ExpectedUpdatedAt *time.Time `json:"expected_updated_at"`
}

func (r *MenuItemRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.Title != nil {
		data["title"] = *r.Title
	}
	if r.URL != nil {
		data["url"] = *r.URL
	}
	if r.SortOrder != nil {
		data["sort_order"] = *r.SortOrder
	}
	if r.IsActive != nil {
		data["is_active"] = *r.IsActive
	}
	if r.HasDropdown != nil {
		data["has_dropdown"] = *r.HasDropdown
	}
	if r.MenuType != nil {
		data["menu_type"] = *r.MenuType
	}
	if r.BoardTableName != nil {
		data["board_table_name"] = *r.BoardTableName
	}
	return data
}

// applyBoardRules validates the board linkage for the effective values of
// a write and derives the item's URL from the registered table. menuType
// and tableName are the values the row will hold after the write, not
// just what the request carried. Returns a user-facing message on
// rejection.
func (h *ApplicationHandler) applyBoardRules(menuType string, tableName *string, data map[string]interface{}) string {
	if menuType == models.MenuTypeBoard && (tableName == nil || *tableName == "") {
		return "'board_table_name' is required for board menu items"
	}
	if tableName != nil && *tableName != "" {
		if !h.Boards.ValidTable(*tableName) {
			return "Unknown board table '" + *tableName + "'; register it before linking a menu item"
		}
		if menuType == models.MenuTypeBoard {
			data["url"] = "/board/" + boards.SlugForTable(*tableName)
		}
	}
	return ""
}

// GetMenu godoc
// @Summary List active menu items
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /menu [get]
func (h *ApplicationHandler) GetMenu(c *fiber.Ctx) error {
	items, err := store.ListOrdered[models.MenuItem](h.Store, store.TableMenuItems, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching menu items")
		items = models.DefaultMenuItems()
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, items)
}

// AdminListMenuItems returns every menu item, inactive rows included.
func (h *ApplicationHandler) AdminListMenuItems(c *fiber.Ctx) error {
	items, err := store.ListOrdered[models.MenuItem](h.Store, store.TableMenuItems, false)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching menu items for admin")
		items = []models.MenuItem{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, items)
}

// CreateMenuItem creates a menu item, enforcing the board registry rules
// for board-typed entries.
func (h *ApplicationHandler) CreateMenuItem(c *fiber.Ctx) error {
	req := new(MenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse menu item JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.Title == nil || *req.Title == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'title' is required")
	}

	menuType := ""
	if req.MenuType != nil {
		menuType = *req.MenuType
	}
	data := req.record()
	if msg := h.applyBoardRules(menuType, req.BoardTableName, data); msg != "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, msg)
	}

	item, err := store.Insert[models.MenuItem](h.Store, store.TableMenuItems, data)
	if err != nil {
		return h.respondStoreError(c, err, "menu item")
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, item)
}

// UpdateMenuItem applies a partial update to one menu item.
func (h *ApplicationHandler) UpdateMenuItem(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(MenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse menu item JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}

	data := req.record()
	// A partial update can touch menu_type and board_table_name
	// separately; the rules apply to what the row ends up holding, so
	// merge the patch with the stored values before validating.
	if req.MenuType != nil || req.BoardTableName != nil {
		existing, err := store.GetByID[models.MenuItem](h.Store, store.TableMenuItems, id)
		if err != nil {
			return h.respondStoreError(c, err, "menu item")
		}
		menuType := existing.MenuType
		if req.MenuType != nil {
			menuType = *req.MenuType
		}
		tableName := existing.BoardTableName
		if req.BoardTableName != nil {
			tableName = req.BoardTableName
		}
		if msg := h.applyBoardRules(menuType, tableName, data); msg != "" {
			return utils.RespondWithError(c, fiber.StatusBadRequest, msg)
		}
	}

	item, err := store.UpdateByID[models.MenuItem](h.Store, store.TableMenuItems, id, data, req.ExpectedUpdatedAt)
	if err != nil {
		return h.respondStoreError(c, err, "menu item")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, item)
}

// DeleteMenuItem removes one menu item. The board table it pointed at is
// untouched.
func (h *ApplicationHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Store.DeleteByID(store.TableMenuItems, id); err != nil {
		return h.respondStoreError(c, err, "menu item")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
