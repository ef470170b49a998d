package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simpletest/user-api/internal/core/ports"
)

// AppHandler serves the root greeting, personalised greetings and system info.
type AppHandler struct {
	greetings ports.GreetingService
	system    ports.SystemService
}

func NewAppHandler(greetings ports.GreetingService, system ports.SystemService) *AppHandler {
	return &AppHandler{greetings: greetings, system: system}
}

// Root handles GET /.
//
// @Summary      Hello World API
// @Description  기본 Hello World 메시지를 반환합니다.
// @Tags         default
// @Produce      plain
// @Success      200  {string}  string  "Hello World!"
// @Router       / [get]
func (h *AppHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, h.greetings.Hello())
}

// Hello handles GET /hello.
//
// @Summary      개인화된 인사말 API
// @Description  사용자 이름과 언어를 받아서 개인화된 인사말을 반환합니다.
// @Tags         default
// @Produce      json
// @Param        name      query     string  false  "사용자 이름"  minlength(1)  maxlength(50)
// @Param        language  query     string  false  "인사말 언어"  Enums(ko, en, ja)  default(ko)
// @Success      200       {object}  helloResponse
// @Failure      400       {object}  ErrorEnvelope
// @Router       /hello [get]
func (h *AppHandler) Hello(c echo.Context) error {
	var req helloRequest
	if err := bindQuery(c, &req, "name", "language"); err != nil {
		return err
	}
	if blankQuery(c, "name") {
		return echo.NewHTTPError(http.StatusBadRequest, "name must be longer than or equal to 1 characters")
	}

	g := h.greetings.Greet(req.Name, req.Language)
	return c.JSON(http.StatusOK, helloResponse{
		Message:   g.Message,
		Timestamp: FormatTimestamp(g.Timestamp),
		Language:  string(g.Language),
	})
}

// System handles GET /system.
//
// @Summary      시스템 정보 API
// @Description  애플리케이션의 시스템 정보를 반환합니다.
// @Tags         default
// @Produce      json
// @Success      200  {object}  systemInfoResponse
// @Router       /system [get]
func (h *AppHandler) System(c echo.Context) error {
	info := h.system.Info()
	return c.JSON(http.StatusOK, systemInfoResponse{
		AppName:       info.AppName,
		Version:       info.Version,
		Environment:   info.Environment,
		Uptime:        FormatTimestamp(info.StartedAt),
		UptimeSeconds: info.Uptime.Seconds(),
		MemoryUsage:   info.HeapMB,
	})
}
