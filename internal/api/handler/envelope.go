package handler

import (
	"time"

	"github.com/labstack/echo/v4"
)

// TimestampLayout is ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// envelope is the uniform wrapper of every JSON success response.
type envelope struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"요청이 성공적으로 처리되었습니다."`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
} // @name Envelope

// ErrorEnvelope is the wrapper of every error response.
type ErrorEnvelope struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"사용자를 찾을 수 없습니다."`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
} // @name ErrorEnvelope

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewErrorEnvelope builds the error body for message, stamped now.
func NewErrorEnvelope(message string) ErrorEnvelope {
	return ErrorEnvelope{
		Success:   false,
		Message:   message,
		Timestamp: FormatTimestamp(time.Now()),
	}
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: FormatTimestamp(time.Now()),
	})
}
