package middleware

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFrom returns the request id stored by RequestLog, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string) //nolint:errcheck // zero value on miss
	return id
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header, the echo context, and the request context.
//
// Probe paths (/healthz, /readyz) log their first success and every failure;
// repeated successes are suppressed. A failure re-arms the next success.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	probes := map[string]*atomic.Bool{
		"/healthz": new(atomic.Bool),
		"/readyz":  new(atomic.Bool),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), requestIDKey{}, reqID)))

			err := next(c)

			status := c.Response().Status
			level := levelFor(status)

			if seen, ok := probes[req.URL.Path]; ok {
				if status < 400 {
					if seen.Swap(true) {
						return err
					}
				} else {
					seen.Store(false)
					level = slog.LevelWarn
				}
			}

			log.LogAttrs(req.Context(), level, "request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("route", c.Path()),
				slog.Int("status", status),
				slog.Int64("bytes_out", c.Response().Size),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", reqID),
			)

			return err
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
