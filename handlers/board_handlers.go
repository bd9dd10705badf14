package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// defaultBoardAuthor matches the column default the board tables ship with.
const defaultBoardAuthor = "관리자"

// BoardPostRequest is the write payload for board posts.
type BoardPostRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	IsPinned *bool   `json:"is_pinned"`
	IsActive *bool   `json:"is_active"`

	ExpectedUpdatedAt *time.Time `json:"expected_updated_at"`
}

func (r *BoardPostRequest) record() map[string]interface{} {
	data := map[string]interface{}{}
	if r.Title != nil {
		data["title"] = *r.Title
	}
	if r.Content != nil {
		data["content"] = *r.Content
	}
	if r.Author != nil {
		data["author"] = *r.Author
	}
	if r.IsPinned != nil {
		data["is_pinned"] = *r.IsPinned
	}
	if r.IsActive != nil {
		data["is_active"] = *r.IsActive
	}
	return data
}

// resolveBoard maps a route slug to its table, checking both the registry
// and the menu system. The empty string plus a handled response means the
// slug did not resolve.
func (h *ApplicationHandler) resolveBoard(c *fiber.Ctx, requireMenu bool) (string, *models.MenuItem, error) {
	slug := c.Params("slug")
	table, ok := h.Boards.TableForSlug(slug)
	if !ok {
		return "", nil, utils.RespondWithError(c, fiber.StatusNotFound, "Board '"+slug+"' not found")
	}
	if !requireMenu {
		return table, nil, nil
	}

	menu, err := store.FindBoardMenu[models.MenuItem](h.Store, table)
	if err != nil {
		// Public board routes degrade like the other public reads: a
		// lookup failure is indistinguishable from an unpublished board.
		if !errors.Is(err, store.ErrNotFound) {
			h.Logger.WithError(err).Errorf("Error resolving board %s", table)
		}
		return "", nil, utils.RespondWithError(c, fiber.StatusNotFound, "Board '"+slug+"' not found")
	}
	return table, menu, nil
}

// GetBoard godoc
// @Summary Resolve a board by slug
// @Description Looks up the board menu entry for board_<slug> and returns the board's metadata.
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /boards/{slug} [get]
func (h *ApplicationHandler) GetBoard(c *fiber.Ctx) error {
	table, menu, err := h.resolveBoard(c, true)
	if err != nil || table == "" {
		return err
	}

	count, countErr := h.Store.Count(table)
	if countErr != nil {
		h.Logger.WithError(countErr).Errorf("Error counting posts in %s", table)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"title":      menu.Title,
		"table":      table,
		"post_count": count,
	})
}

// GetBoardPosts returns a board's active posts, pinned first then newest.
func (h *ApplicationHandler) GetBoardPosts(c *fiber.Ctx) error {
	table, _, err := h.resolveBoard(c, true)
	if err != nil || table == "" {
		return err
	}

	posts, err := store.ListBoardPosts[models.BoardPost](h.Store, table, true)
	if err != nil {
		h.Logger.WithError(err).Errorf("Error fetching posts from %s", table)
		posts = []models.BoardPost{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, posts)
}

// AdminListBoardPosts returns every post of a board, inactive included.
// Admin routes only require the table to be registered, not published in
// the menu, so posts can be prepared before the board goes live.
func (h *ApplicationHandler) AdminListBoardPosts(c *fiber.Ctx) error {
	table, _, err := h.resolveBoard(c, false)
	if err != nil || table == "" {
		return err
	}

	posts, listErr := store.ListBoardPosts[models.BoardPost](h.Store, table, false)
	if listErr != nil {
		h.Logger.WithError(listErr).Errorf("Error fetching posts from %s for admin", table)
		posts = []models.BoardPost{}
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, posts)
}

// CreateBoardPost creates a post on a registered board.
func (h *ApplicationHandler) CreateBoardPost(c *fiber.Ctx) error {
	table, _, err := h.resolveBoard(c, false)
	if err != nil || table == "" {
		return err
	}

	req := new(BoardPostRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse post JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}
	if req.Title == nil || *req.Title == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'title' is required")
	}

	data := req.record()
	if req.Author == nil {
		data["author"] = defaultBoardAuthor
	}

	post, err := store.Insert[models.BoardPost](h.Store, table, data)
	if err != nil {
		return h.respondStoreError(c, err, "post")
	}
	return utils.RespondWithJSON(c, fiber.StatusCreated, post)
}

// UpdateBoardPost applies a partial update to one post.
func (h *ApplicationHandler) UpdateBoardPost(c *fiber.Ctx) error {
	table, _, err := h.resolveBoard(c, false)
	if err != nil || table == "" {
		return err
	}
	id := c.Params("id")

	req := new(BoardPostRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse post JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}

	post, err := store.UpdateByID[models.BoardPost](h.Store, table, id, req.record(), req.ExpectedUpdatedAt)
	if err != nil {
		return h.respondStoreError(c, err, "post")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, post)
}

// DeleteBoardPost removes one post.
func (h *ApplicationHandler) DeleteBoardPost(c *fiber.Ctx) error {
	table, _, err := h.resolveBoard(c, false)
	if err != nil || table == "" {
		return err
	}
	id := c.Params("id")
	if err := h.Store.DeleteByID(table, id); err != nil {
		return h.respondStoreError(c, err, "post")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
