package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/simpletest/user-api/internal/core/domain"
	"github.com/simpletest/user-api/internal/core/ports"
	"github.com/simpletest/user-api/internal/core/service"
	"github.com/simpletest/user-api/internal/infrastructure/db/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.NewUserStore()
	users := service.NewUserService(store, zerolog.Nop())
	if err := users.Seed(context.Background(), domain.SeedUsers()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	reg := prometheus.NewRegistry()
	e := NewRouter(Dependencies{
		Logger:    zerolog.Nop(),
		Users:     users,
		Greetings: service.NewGreetingService(zerolog.Nop()),
		System: service.NewSystemService(service.AppInfo{
			Name: "Simple Test API", Version: "1.0.0", Environment: "test",
		}, time.Now()),
		Readiness:  map[string]ports.Pinger{"memory": store},
		Registerer: reg,
		Gatherer:   reg,
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestRouter_UserLifecycle(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, srv, http.MethodPost, "/users", `{"name":"김철수","email":"kim@example.com","password":"password123"}`)
	if code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%v)", code, body)
	}
	created := body["data"].(map[string]any)
	if created["id"] != float64(3) || created["role"] != "user" || created["status"] != "active" {
		t.Fatalf("unexpected created user: %+v", created)
	}

	code, body = do(t, srv, http.MethodPost, "/users", `{"name":"dup","email":"kim@example.com","password":"password123"}`)
	if code != http.StatusConflict || body["message"] != msgEmailConflict || body["success"] != false {
		t.Fatalf("duplicate: expected 409 envelope, got %d (%v)", code, body)
	}

	code, body = do(t, srv, http.MethodGet, "/users/3", "")
	if code != http.StatusOK || body["data"].(map[string]any)["createdAt"] != created["createdAt"] {
		t.Fatalf("get: unexpected %d (%v)", code, body)
	}

	code, body = do(t, srv, http.MethodPut, "/users/3", `{"email":"hong@example.com"}`)
	if code != http.StatusConflict {
		t.Fatalf("update conflict: expected 409, got %d (%v)", code, body)
	}

	code, body = do(t, srv, http.MethodPut, "/users/3", `{"name":"X"}`)
	updated := body["data"].(map[string]any)
	if code != http.StatusOK || updated["name"] != "X" || updated["email"] != "kim@example.com" || updated["createdAt"] != created["createdAt"] {
		t.Fatalf("update: unexpected %d (%v)", code, body)
	}

	code, _ = do(t, srv, http.MethodDelete, "/users/3", "")
	if code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", code)
	}

	code, body = do(t, srv, http.MethodGet, "/users/3", "")
	if code != http.StatusNotFound || body["message"] != msgUserNotFound {
		t.Fatalf("get after delete: expected 404, got %d (%v)", code, body)
	}

	code, body = do(t, srv, http.MethodGet, "/users", "")
	pagination := body["data"].(map[string]any)["pagination"].(map[string]any)
	if code != http.StatusOK || pagination["total"] != float64(2) {
		t.Fatalf("list: unexpected %d (%v)", code, body)
	}
}

func TestRouter_ListHugePageIsEmpty(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, srv, http.MethodGet, "/users?page=288230376151711745&limit=64", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", code, body)
	}
	data := body["data"].(map[string]any)
	if users := data["users"].([]any); len(users) != 0 {
		t.Fatalf("expected no users on an out-of-range page, got %d", len(users))
	}
	if total := data["pagination"].(map[string]any)["total"]; total != float64(2) {
		t.Fatalf("expected total 2, got %v", total)
	}
}

func TestRouter_ListHugeLimitReturnsEverything(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, srv, http.MethodGet, "/users?limit=9223372036854775807", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", code, body)
	}
	data := body["data"].(map[string]any)
	if users := data["users"].([]any); len(users) != 2 {
		t.Fatalf("expected both users, got %d", len(users))
	}
	if pages := data["pagination"].(map[string]any)["totalPages"]; pages != float64(1) {
		t.Fatalf("expected one page, got %v", pages)
	}
}

func TestRouter_Validation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method, path, body string
		wantMsg            string
	}{
		{http.MethodPost, "/users", `{"name":"a","email":"a@example.com","password":"password123"}`, "name must be longer than or equal to 2 characters"},
		{http.MethodGet, "/users?page=-2", "", "page must not be less than 1"},
		{http.MethodGet, "/users/abc", "", "Validation failed (numeric string is expected)"},
		{http.MethodGet, "/hello?foo=bar", "", "property foo should not exist"},
	}
	for _, tt := range tests {
		code, body := do(t, srv, tt.method, tt.path, tt.body)
		if code != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d", tt.method, tt.path, code)
		}
		if msg, _ := body["message"].(string); !strings.Contains(msg, tt.wantMsg) {
			t.Fatalf("%s %s: unexpected message %q", tt.method, tt.path, msg)
		}
	}
}

func TestRouter_DefaultRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(raw) != "Hello World!" {
		t.Fatalf("unexpected root body %q", raw)
	}

	code, body := do(t, srv, http.MethodGet, "/hello?name=Tom&language=en", "")
	if code != http.StatusOK || body["message"] != "Hello, Tom!" || body["language"] != "en" {
		t.Fatalf("hello: unexpected %d (%v)", code, body)
	}

	code, body = do(t, srv, http.MethodGet, "/system", "")
	if code != http.StatusOK || body["appName"] != "Simple Test API" {
		t.Fatalf("system: unexpected %d (%v)", code, body)
	}

	code, body = do(t, srv, http.MethodGet, "/health", "")
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("health: unexpected %d (%v)", code, body)
	}

	code, body = do(t, srv, http.MethodGet, "/health/ready", "")
	if code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("ready: unexpected %d (%v)", code, body)
	}

	code, body = do(t, srv, http.MethodGet, "/nope", "")
	if code != http.StatusNotFound || body["success"] != false {
		t.Fatalf("unknown route: unexpected %d (%v)", code, body)
	}
}

func TestRouter_Metrics(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodGet, "/health", "")

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK || !strings.Contains(string(raw), "userapi_requests_total") {
		t.Fatalf("expected echoprometheus request counter, got %d", resp.StatusCode)
	}
}

func TestRouter_HandlerPanicIsLoggedAndRendered(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	e := NewRouter(Dependencies{
		Logger:     zerolog.New(&buf),
		Users:      service.NewUserService(memory.NewUserStore(), zerolog.Nop()),
		Greetings:  service.NewGreetingService(zerolog.Nop()),
		System:     service.NewSystemService(service.AppInfo{}, time.Now()),
		Registerer: reg,
		Gatherer:   reg,
	})
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["success"] != false || body["message"] != "internal server error" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !strings.Contains(buf.String(), `"message":"request GET /boom failed"`) {
		t.Fatalf("expected a failed line, got %s", buf.String())
	}
}
