// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the liveness routes with the Echo instance.
// The catch-all stays last so the explicit health path keeps its stable
// JSON shape.
func RegisterRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.HandleHealth)
	e.Any("/*", h.HandlePing)
}
