package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/simpletest/user-api/internal/core/ports"
)

const msgHealthy = "서비스가 정상적으로 작동 중입니다."

// HealthHandler serves the liveness and readiness checks.
// Liveness never touches dependencies; readiness pings every registered one.
type HealthHandler struct {
	deps map[string]ports.Pinger
}

func NewHealthHandler(deps map[string]ports.Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// Liveness handles GET /health.
//
// @Summary      헬스 체크 API
// @Description  서비스의 상태를 확인합니다.
// @Tags         default
// @Produce      json
// @Success      200  {object}  envelope{data=healthStatus}
// @Failure      500  {object}  ErrorEnvelope
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return respond(c, http.StatusOK, msgHealthy, healthStatus{
		Status:    "healthy",
		Timestamp: FormatTimestamp(time.Now()),
	})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
} // @name ReadinessResponse

// Readiness handles GET /health/ready.
//
// @Summary      Readiness check
// @Description  Pings the configured user store backend.
// @Tags         default
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make(map[string]dependencyStatus, len(names))
	healthy := true
	for _, name := range names {
		if err := h.deps[name].Ping(ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
