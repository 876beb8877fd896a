// handlers_health.go - Liveness handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers hosting keep-alive probes.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version: version,
	}
}

// HandleHealth reports process liveness.
func (h *HealthHandler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}

// HandlePing answers any method on any other path with a trivial body.
// Free hosting tiers ping arbitrary paths to decide whether the process
// is alive.
func (h *HealthHandler) HandlePing(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
