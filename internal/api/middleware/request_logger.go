package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLoggerConfig configures RequestLogger.
type RequestLoggerConfig struct {
	Logger zerolog.Logger
	// LogResponseSize adds a debug line with the written byte count.
	LogResponseSize bool
}

// RequestLogger emits a "started" line before the handler runs and a
// "completed" or "failed" line after it, labelled through the route table.
//
// Errors are rendered with c.Error so the logged status is the one the client
// receives; the error is still returned unchanged to outer middleware.
// A panicking handler is recovered here and logged as a failure.
func RequestLogger(cfg RequestLoggerConfig) echo.MiddlewareFunc {
	log := cfg.Logger
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			label := Describe(req)
			start := time.Now()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Str("request_id", requestID(c)).
				Msg(label + " started")

			err := callRecovering(next, c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()
			elapsed := time.Since(start)
			if err != nil {
				log.Error().
					Err(err).
					Str("method", req.Method).
					Str("path", req.URL.Path).
					Int("status", res.Status).
					Int64("latency_ms", elapsed.Milliseconds()).
					Str("request_id", requestID(c)).
					Msg(label + " failed")
				return err
			}

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("latency_ms", elapsed.Milliseconds()).
				Str("request_id", requestID(c)).
				Msg(label + " completed")

			if cfg.LogResponseSize {
				log.Debug().
					Int64("bytes", res.Size).
					Str("request_id", requestID(c)).
					Msg(label + " response written")
			}
			return nil
		}
	}
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// callRecovering runs next, turning a panic into an error.
func callRecovering(next echo.HandlerFunc, c echo.Context) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if r == http.ErrAbortHandler {
			panic(r)
		}
		if e, ok := r.(error); ok {
			err = fmt.Errorf("panic recovered: %w", e)
			return
		}
		err = fmt.Errorf("panic recovered: %v", r)
	}()
	return next(c)
}
