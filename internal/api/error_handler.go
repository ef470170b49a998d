package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/simpletest/user-api/internal/api/handler"
	"github.com/simpletest/user-api/internal/core/domain"
)

const (
	msgEmailConflict = "이미 존재하는 이메일입니다."
	msgUserNotFound  = "사용자를 찾을 수 없습니다."
	msgInvalidRole   = "role must be one of the following values: admin, user, guest"
	msgInvalidStatus = "status must be one of the following values: active, inactive, suspended"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the error envelope: {"success": false, "message": ..., "timestamp": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, handler.NewErrorEnvelope(msg))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind/validation failures, 404/405 from the router).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, msgUserNotFound
	case errors.Is(err, domain.ErrEmailConflict):
		return http.StatusConflict, msgEmailConflict
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, msgInvalidRole
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, msgInvalidStatus
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
