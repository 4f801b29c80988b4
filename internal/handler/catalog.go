// Package handler exposes the read-only catalog surface over HTTP for
// cmd/catalogd.  The storefront itself talks to a catalog.Store
// directly; these endpoints exist so other tooling (and manual curl
// inspection) can see exactly the data the app sees.  Responses carry
// sanitized DTOs; unknown ids produce a 404 with a JSON error body.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
)

// CatalogHandler serves catalog lookups from whichever Store flavor the
// service was started with.
type CatalogHandler struct {
	Store catalog.Store
}

// TicketTypeDTO is a ticket tier in API responses.  Availability is the
// derived capacity-minus-sold figure so clients never recompute it.
type TicketTypeDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceCents   uint32 `json:"price_cents"`
	Currency     string `json:"currency"`
	Capacity     int    `json:"capacity"`
	SoldCount    int    `json:"sold_count"`
	Availability int    `json:"availability"`
	SoldOut      bool   `json:"sold_out"`
}

// EventDTO is an event in API responses.
type EventDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	StartsAt    time.Time       `json:"starts_at"`
	Location    string          `json:"location"`
	CoverURL    string          `json:"cover_url,omitempty"`
	Featured    bool            `json:"featured"`
	OrganizerID string          `json:"organizer_id"`
	CategoryID  string          `json:"category_id"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	TicketTypes []TicketTypeDTO `json:"ticket_types"`
}

// CategoryDTO is a category selector entry in API responses.
type CategoryDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

// BookingDTO is a booking row in API responses.
type BookingDTO struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

func toEventDTO(e model.Event) EventDTO {
	dto := EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		Location:    e.Location,
		CoverURL:    e.CoverURL,
		Featured:    e.Featured,
		OrganizerID: e.OrganizerID,
		CategoryID:  e.CategoryID,
		Rating:      e.Rating,
		ReviewCount: e.ReviewCount,
		TicketTypes: make([]TicketTypeDTO, 0, len(e.TicketTypes)),
	}
	for _, t := range e.TicketTypes {
		dto.TicketTypes = append(dto.TicketTypes, TicketTypeDTO{
			ID:           t.ID,
			Name:         t.Name,
			PriceCents:   t.PriceCents,
			Currency:     t.Currency,
			Capacity:     t.Capacity,
			SoldCount:    t.SoldCount,
			Availability: t.Availability(),
			SoldOut:      t.SoldOut(),
		})
	}
	return dto
}

// ListEvents serves GET /v1/events.  The filter query parameter selects
// "featured" (the default) or "category"; category requires category_id.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	f := catalog.Featured()
	switch c.QueryParam("filter") {
	case "", string(catalog.FilterFeatured):
	case string(catalog.FilterByCategory):
		id := c.QueryParam("category_id")
		if id == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_id required"})
		}
		f = catalog.ByCategory(id)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown filter"})
	}

	events, err := h.Store.FilterEvents(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, toEventDTO(e))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetEvent serves GET /v1/events/:id.
func (h *CatalogHandler) GetEvent(c echo.Context) error {
	ctx := c.Request().Context()
	e, err := h.Store.FindEvent(ctx, c.Param("id"))
	if err != nil {
		if err == catalog.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, toEventDTO(e))
}

// GetOrganizer serves GET /v1/organizers/:id.
func (h *CatalogHandler) GetOrganizer(c echo.Context) error {
	ctx := c.Request().Context()
	o, err := h.Store.FindOrganizer(ctx, c.Param("id"))
	if err != nil {
		if err == catalog.ErrOrganizerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "organizer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":        o.ID,
		"name":      o.Name,
		"image_url": o.ImageURL,
		"verified":  o.Verified,
	})
}

// ListCategories serves GET /v1/categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	cats, err := h.Store.ListCategories(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	out := make([]CategoryDTO, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategoryDTO{ID: cat.ID, Name: cat.Name, Glyph: cat.Glyph})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ListUserBookings serves GET /v1/users/:id/bookings.  Unknown users get
// an empty items array, matching the store contract.
func (h *CatalogHandler) ListUserBookings(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	bookings, err := h.Store.ListBookingsByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	out := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingDTO{
			ID:        b.ID,
			EventID:   b.EventID,
			Status:    string(b.Status),
			Reference: b.Reference,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
