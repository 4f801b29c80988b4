package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/handler"
	"github.com/eventory/miniapp-storefront/internal/router"
)

func newServer() *echo.Echo {
	e := echo.New()
	router.RegisterRoutes(e, &handler.CatalogHandler{Store: catalog.NewFixtureStore()})
	return e
}

func doGet(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doGet(t, newServer(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestListEventsDefaultsToFeatured(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/events")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []handler.EventDTO `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)
	for _, e := range body.Items {
		assert.True(t, e.Featured)
	}
}

func TestListEventsByCategory(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/events?filter=category&category_id=cat-art")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []handler.EventDTO `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "evt3", body.Items[0].ID)
}

func TestListEventsCategoryRequiresID(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/events?filter=category")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEventExposesDerivedAvailability(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/events/evt1")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto handler.EventDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	require.Len(t, dto.TicketTypes, 2)
	assert.Equal(t, 1800, dto.TicketTypes[0].Availability)
	assert.True(t, dto.TicketTypes[1].SoldOut)
}

func TestGetEventNotFound(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/events/evt999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"event not found"}`, rec.Body.String())
}

func TestGetOrganizerNotFound(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/organizers/org999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListUserBookings(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/users/123456789/bookings")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []handler.BookingDTO `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "evt2", body.Items[0].EventID)
}

func TestListUserBookingsInvalidID(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/users/abc/bookings")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUserBookingsUnknownUserEmpty(t *testing.T) {
	rec := doGet(t, newServer(), "/v1/users/42/bookings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}
