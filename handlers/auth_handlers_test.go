package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilemall/api-gateway/middleware"
)

func loginRequest(body string) *http.Request {
	return httptestRequest(http.MethodPost, "/api/v1/auth/login", body)
}

func TestLoginIssuesTokenAndCookie(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doRequest(t, app, loginRequest(`{"email":"admin@example.com","password":"admin1234"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.AdminTokenCookie {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "admin_token cookie must be set")
	assert.True(t, sessionCookie.HttpOnly)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doRequest(t, app, loginRequest(`{"email":"admin@example.com","password":"nope"}`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
	_, hasData := body["data"]
	assert.False(t, hasData, "no token on failed login")
}

func TestLoginRejectsWrongEmail(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doRequest(t, app, loginRequest(`{"email":"intruder@example.com","password":"admin1234"}`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginValidatesPayload(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doRequest(t, app, loginRequest(`{"email":"not-an-email","password":""}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminRouteRequiresToken(t *testing.T) {
	app, backend, _ := newTestApp(t)

	resp := doRequest(t, app, httptestRequest(http.MethodGet, "/api/v1/admin/banners", ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, backend.requestCount(), "unauthenticated requests must not reach the backend")
}

func TestAdminRouteAcceptsBearerToken(t *testing.T) {
	app, _, cfg := newTestApp(t)

	req := httptestRequest(http.MethodGet, "/api/v1/admin/banners", "")
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, cfg))
	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRouteAcceptsCookieToken(t *testing.T) {
	app, _, cfg := newTestApp(t)

	req := httptestRequest(http.MethodGet, "/api/v1/admin/banners", "")
	req.AddCookie(&http.Cookie{Name: middleware.AdminTokenCookie, Value: adminToken(t, cfg)})
	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRouteRejectsGarbageToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptestRequest(http.MethodGet, "/api/v1/admin/banners", "")
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doRequest(t, app, httptestRequest(http.MethodPost, "/api/v1/auth/logout", ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.AdminTokenCookie {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Empty(t, sessionCookie.Value)
}
