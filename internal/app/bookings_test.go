package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventory/miniapp-storefront/internal/app"
	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
	"github.com/eventory/miniapp-storefront/internal/navigation"
)

func TestListBookingsForUser(t *testing.T) {
	store := catalog.NewFixtureStore()
	ctx := context.Background()

	t.Run("joins the fixture user's bookings to events", func(t *testing.T) {
		entries := app.ListBookingsForUser(ctx, store, 123456789)
		require.Len(t, entries, 2)
		assert.Equal(t, "evt2", entries[0].Event.ID)
		assert.Equal(t, "Ship It: Systems Night", entries[0].Event.Title)
		assert.Equal(t, "evt3", entries[1].Event.ID)
	})

	t.Run("third-party user gets an empty sequence", func(t *testing.T) {
		assert.Empty(t, app.ListBookingsForUser(ctx, store, 555))
	})
}

func TestListBookingsDropsDanglingEvents(t *testing.T) {
	// One booking points at an event missing from the catalog; the join
	// drops it silently instead of failing the screen.
	events := []model.Event{{ID: "evt1", Title: "Only Event"}}
	bookings := []model.Booking{
		{ID: "bkg1", EventID: "evt1", UserID: 1, Status: model.BookingConfirmed, Reference: "EV-AAA111"},
		{ID: "bkg2", EventID: "evt-gone", UserID: 1, Status: model.BookingConfirmed, Reference: "EV-BBB222"},
	}
	store := catalog.NewMemoryStore(events, nil, nil, bookings)

	entries := app.ListBookingsForUser(context.Background(), store, 1)
	require.Len(t, entries, 1)
	assert.Equal(t, "bkg1", entries[0].Booking.ID)
}

func TestBookingsScreenUsesHostIdentity(t *testing.T) {
	front, _ := newStorefront(t)

	front.Nav.Navigate(navigation.ScreenMyBookings, nil)
	entries := front.Bookings.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "EV-7F2K9Q", entries[0].Booking.Reference)

	front.Nav.Navigate(navigation.ScreenHome, nil)
	assert.Empty(t, front.Bookings.Entries(), "entries are screen-scoped")
}
