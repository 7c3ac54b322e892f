// Package handlers implements HTTP handlers for the catalog-gateway API.
package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReadinessChecker reports whether the gateway can serve catalog requests.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	checker ReadinessChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(c ReadinessChecker) *HealthHandler {
	return &HealthHandler{checker: c}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the catalog configuration is complete, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.checker.Ready(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
