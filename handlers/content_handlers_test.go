package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServiceCardsFlagsImageIcons(t *testing.T) {
	app, backend, _ := newTestApp(t)
	backend.respond = respondJSON(`[
		{"id":"00000000-0000-0000-0000-000000000001","title":"인터넷 가입","icon_url":"🌐","sort_order":1,"is_active":true,"created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"},
		{"id":"00000000-0000-0000-0000-000000000002","title":"요금제 안내","icon_url":"https://cdn.example.com/icon.png","sort_order":2,"is_active":true,"created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}
	]`)

	resp := doRequest(t, app, httptestRequest(http.MethodGet, "/api/v1/service-cards", ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cards := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, cards, 2)
	assert.Equal(t, false, cards[0].(map[string]interface{})["icon_is_image"])
	assert.Equal(t, true, cards[1].(map[string]interface{})["icon_is_image"])
}

func TestCreateServiceCardRejectsBadLinkURL(t *testing.T) {
	app, backend, cfg := newTestApp(t)

	req := httptestRequest(http.MethodPost, "/api/v1/admin/service-cards", `{"title":"가입","link_url":"not-a-url"}`)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, backend.requestCount())
}

func TestCreatePricingPlanRequiresNameAndPrice(t *testing.T) {
	app, backend, cfg := newTestApp(t)

	for _, payload := range []string{`{"price":"월 39,000원"}`, `{"name":"5G 스페셜"}`} {
		req := httptestRequest(http.MethodPost, "/api/v1/admin/pricing-plans", payload)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
		resp := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
	}
	assert.Zero(t, backend.requestCount())
}

func TestCreatePricingPlanStoresFeatures(t *testing.T) {
	app, backend, cfg := newTestApp(t)
	backend.respond = respondJSON(`[{"id":"00000000-0000-0000-0000-000000000003","name":"5G 스페셜","price":"월 39,000원","tag_color":"#ef4444","features":["데이터 무제한","통화 무제한"],"sort_order":1,"is_active":true,"created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}]`)

	payload := `{"name":"5G 스페셜","price":"월 39,000원","features":["데이터 무제한","통화 무제한"]}`
	req := httptestRequest(http.MethodPost, "/api/v1/admin/pricing-plans", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(backend.lastRequest(t).Body), "데이터 무제한")

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Len(t, data["features"], 2)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	app, backend, cfg := newTestApp(t)

	for _, payload := range []string{
		`{"customer_name":"김철수","rating":0,"review_text":"좋아요"}`,
		`{"customer_name":"김철수","rating":6,"review_text":"좋아요"}`,
		`{"customer_name":"김철수","review_text":"평점 없음"}`,
	} {
		req := httptestRequest(http.MethodPost, "/api/v1/admin/reviews", payload)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
		resp := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
	}
	assert.Zero(t, backend.requestCount())
}

func TestGetEventBannersCarriesRotationInterval(t *testing.T) {
	app, backend, _ := newTestApp(t)
	backend.respond = respondJSON(`[{"id":"00000000-0000-0000-0000-000000000004","title":"가을 이벤트","sort_order":1,"is_active":true,"created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}]`)

	resp := doRequest(t, app, httptestRequest(http.MethodGet, "/api/v1/event-banners", ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.EqualValues(t, 6000, data["rotate_interval_ms"])
	assert.Len(t, data["items"], 1)
}

func TestAdminListIncludesInactiveRows(t *testing.T) {
	app, backend, cfg := newTestApp(t)

	req := httptestRequest(http.MethodGet, "/api/v1/admin/reviews", "")
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NotContains(t, backend.lastRequest(t).Query, "is_active")
}

func TestPublicListFiltersInactiveRows(t *testing.T) {
	app, backend, _ := newTestApp(t)

	resp := doRequest(t, app, httptestRequest(http.MethodGet, "/api/v1/reviews", ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	query := backend.lastRequest(t).Query
	assert.Contains(t, query, "is_active=eq.true")
	assert.Contains(t, query, "sort_order.asc")
}
