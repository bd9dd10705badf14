package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	supa "github.com/supabase-community/supabase-go"

	"mobilemall/api-gateway/config"
	"mobilemall/api-gateway/internal/auth"
	"mobilemall/api-gateway/internal/boards"
	"mobilemall/api-gateway/internal/store"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// fakeBackend stands in for the hosted Supabase API (both /rest/v1 and
// /storage/v1). Tests install a respond func and assert on the recorded
// requests.
type fakeBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  http.HandlerFunc
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   body,
	})
	f.mu.Unlock()
	if f.respond != nil {
		f.respond(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte("[]"))
}

func (f *fakeBackend) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeBackend) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func (f *fakeBackend) requestsTo(path string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []recordedRequest
	for _, req := range f.requests {
		if req.Path == path {
			matched = append(matched, req)
		}
	}
	return matched
}

func respondJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func newTestApp(t *testing.T) (*fiber.App, *fakeBackend, *config.Config) {
	t.Helper()

	backend := &fakeBackend{}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		SupabaseURL:   srv.URL,
		SupabaseKey:   "test-key",
		StorageBucket: "images",
		JWTSecret:     "test-secret",
		AdminTokenTTL: time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin1234",
		BoardTables:   []string{"board_notice", "board_free"},
	}

	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	require.NoError(t, err)

	registry, err := boards.NewRegistry(cfg.BoardTables)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := NewApplicationHandler(cfg, logger, client, store.New(client, logger), registry)

	app := fiber.New(fiber.Config{BodyLimit: 8 * 1024 * 1024})
	RegisterRoutes(app, h)
	return app, backend, cfg
}

// adminToken mints a valid session token for admin-route tests.
func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := auth.GenerateAdminToken(cfg.JWTSecret, cfg.AdminEmail, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

// httptestRequest builds a JSON request against the app under test.
func httptestRequest(method, target, body string) *http.Request {
	req, _ := http.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	return decoded
}
