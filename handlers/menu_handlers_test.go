package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuFallsBackToHomeLink(t *testing.T) {
	app, backend, _ := newTestApp(t)
	backend.respond = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}

	resp := doRequest(t, app, httptestRequest(http.MethodGet, "/api/v1/menu", ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "홈", items[0].(map[string]interface{})["title"])
}

func TestCreateBoardMenuItemDerivesURL(t *testing.T) {
	app, backend, cfg := newTestApp(t)
	backend.respond = respondJSON(`[{"id":"00000000-0000-0000-0000-0000000000aa","title":"공지사항","url":"/board/notice","sort_order":1,"is_active":true,"has_dropdown":false,"menu_type":"board","board_table_name":"board_notice","created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}]`)

	payload := `{"title":"공지사항","menu_type":"board","board_table_name":"board_notice","url":"/wrong"}`
	req := httptestRequest(http.MethodPost, "/api/v1/admin/menu-items", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The caller cannot pick the URL for a board item; it follows from
	// the registered table.
	assert.Contains(t, string(backend.lastRequest(t).Body), `"/board/notice"`)
}

func TestCreateBoardMenuItemRejectsUnregisteredTable(t *testing.T) {
	app, backend, cfg := newTestApp(t)

	payload := `{"title":"자료실","menu_type":"board","board_table_name":"board_archive"}`
	req := httptestRequest(http.MethodPost, "/api/v1/admin/menu-items", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, backend.requestCount())
	assert.Contains(t, decodeBody(t, resp)["message"], "board_archive")
}

func TestCreateBoardMenuItemRequiresTableName(t *testing.T) {
	app, backend, cfg := newTestApp(t)

	payload := `{"title":"게시판","menu_type":"board"}`
	req := httptestRequest(http.MethodPost, "/api/v1/admin/menu-items", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, backend.requestCount())
}

func TestCreateMenuItemRejectsUnknownType(t *testing.T) {
	app, _, cfg := newTestApp(t)

	payload := `{"title":"외부 링크","menu_type":"popup"}`
	req := httptestRequest(http.MethodPost, "/api/v1/admin/menu-items", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// menuItemBackend serves the stored row on reads and echoes a row on
// writes, so partial-update tests can exercise the merge with stored
// values.
func menuItemBackend(stored string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stored))
	}
}

const storedBoardMenuItem = `[{"id":"00000000-0000-0000-0000-0000000000aa","title":"공지사항","url":"/board/notice","sort_order":1,"is_active":true,"has_dropdown":false,"menu_type":"board","board_table_name":"board_notice","created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}]`

func TestUpdateMenuItemToBoardTypeRevalidates(t *testing.T) {
	app, backend, cfg := newTestApp(t)
	backend.respond = menuItemBackend(storedBoardMenuItem)

	payload := `{"menu_type":"board","board_table_name":"board_unknown"}`
	req := httptestRequest(http.MethodPatch, "/api/v1/admin/menu-items/00000000-0000-0000-0000-0000000000aa", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	for _, r := range backend.requestsTo("/rest/v1/menu_items") {
		assert.NotEqual(t, http.MethodPatch, r.Method, "rejected writes must not reach the backend")
	}
}

func TestUpdateMenuItemTableNameAloneIsValidated(t *testing.T) {
	app, backend, cfg := newTestApp(t)
	backend.respond = menuItemBackend(storedBoardMenuItem)

	// menu_type omitted from the patch; the stored row is board-typed, so
	// an unregistered table must still be rejected.
	payload := `{"board_table_name":"board_evil"}`
	req := httptestRequest(http.MethodPatch, "/api/v1/admin/menu-items/00000000-0000-0000-0000-0000000000aa", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["message"], "board_evil")
	for _, r := range backend.requestsTo("/rest/v1/menu_items") {
		assert.NotEqual(t, http.MethodPatch, r.Method, "rejected writes must not reach the backend")
	}
}

func TestUpdateMenuItemTableNameAloneDerivesURL(t *testing.T) {
	app, backend, cfg := newTestApp(t)
	backend.respond = menuItemBackend(storedBoardMenuItem)

	payload := `{"board_table_name":"board_free"}`
	req := httptestRequest(http.MethodPatch, "/api/v1/admin/menu-items/00000000-0000-0000-0000-0000000000aa", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, string(backend.lastRequest(t).Body), `"/board/free"`)
}

func TestUpdateMenuItemToBoardTypeUsesStoredTable(t *testing.T) {
	app, backend, cfg := newTestApp(t)
	stored := `[{"id":"00000000-0000-0000-0000-0000000000ab","title":"게시판","sort_order":3,"is_active":true,"has_dropdown":false,"menu_type":"link","board_table_name":"board_notice","created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}]`
	backend.respond = menuItemBackend(stored)

	payload := `{"menu_type":"board"}`
	req := httptestRequest(http.MethodPatch, "/api/v1/admin/menu-items/00000000-0000-0000-0000-0000000000ab", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, string(backend.lastRequest(t).Body), `"/board/notice"`)
}
