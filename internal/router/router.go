// Package router registers catalogd's HTTP routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/eventory/miniapp-storefront/internal/handler"
)

// RegisterRoutes wires the health check and the read-only catalog
// surface onto the provided Echo instance.  Every endpoint is
// unauthenticated: catalogd serves reference data only.
func RegisterRoutes(e *echo.Echo, h *handler.CatalogHandler) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.GET("/events", h.ListEvents)
	v1.GET("/events/:id", h.GetEvent)
	v1.GET("/organizers/:id", h.GetOrganizer)
	v1.GET("/categories", h.ListCategories)
	v1.GET("/users/:id/bookings", h.ListUserBookings)
}
