package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/simpletest/user-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found", fmt.Errorf("get user 9: %w", domain.ErrUserNotFound), http.StatusNotFound, msgUserNotFound},
		{"conflict", fmt.Errorf("create user: %w", domain.ErrEmailConflict), http.StatusConflict, msgEmailConflict},
		{"invalid role", fmt.Errorf("create user: %w", domain.ErrInvalidRole), http.StatusBadRequest, msgInvalidRole},
		{"invalid status", fmt.Errorf("update user 2: %w", domain.ErrInvalidStatus), http.StatusBadRequest, msgInvalidStatus},
		{"http error", echo.NewHTTPError(http.StatusBadRequest, "name is required"), http.StatusBadRequest, "name is required"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users/9", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["success"] != false || body["message"] != tt.wantMsg || body["timestamp"] == "" {
				t.Fatalf("unexpected body: %+v", body)
			}
			if _, hasData := body["data"]; hasData {
				t.Fatal("error envelope must not carry data")
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Body.String() != "done" {
		t.Fatalf("body was rewritten: %q", rec.Body.String())
	}
}
