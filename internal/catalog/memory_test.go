package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
)

func TestFixtureFindEvent(t *testing.T) {
	store := catalog.NewFixtureStore()
	ctx := context.Background()

	ev, err := store.FindEvent(ctx, "evt1")
	require.NoError(t, err)
	assert.Equal(t, "Harbor Lights Festival", ev.Title)
	require.Len(t, ev.TicketTypes, 2)
	for _, tt := range ev.TicketTypes {
		assert.Equal(t, "evt1", tt.EventID, "every tier belongs to its event")
	}
	assert.Equal(t, 1800, ev.TicketTypes[0].Availability())
	assert.True(t, ev.TicketTypes[1].SoldOut())
}

func TestFixtureFindEventMiss(t *testing.T) {
	store := catalog.NewFixtureStore()

	_, err := store.FindEvent(context.Background(), "evt999")
	assert.ErrorIs(t, err, catalog.ErrEventNotFound)
}

func TestFixtureFindOrganizer(t *testing.T) {
	store := catalog.NewFixtureStore()
	ctx := context.Background()

	org, err := store.FindOrganizer(ctx, "org1")
	require.NoError(t, err)
	assert.True(t, org.Verified)

	_, err = store.FindOrganizer(ctx, "org999")
	assert.ErrorIs(t, err, catalog.ErrOrganizerNotFound)
}

func TestFilterEvents(t *testing.T) {
	store := catalog.NewFixtureStore()
	ctx := context.Background()

	t.Run("featured is the default view", func(t *testing.T) {
		events, err := store.FilterEvents(ctx, catalog.Featured())
		require.NoError(t, err)
		ids := eventIDs(events)
		assert.Equal(t, []string{"evt1", "evt3"}, ids)
	})

	t.Run("category view is exclusive", func(t *testing.T) {
		events, err := store.FilterEvents(ctx, catalog.ByCategory("cat-tech"))
		require.NoError(t, err)
		ids := eventIDs(events)
		assert.Equal(t, []string{"evt2"}, ids)
	})

	t.Run("unknown category yields empty, not error", func(t *testing.T) {
		events, err := store.FilterEvents(ctx, catalog.ByCategory("cat-none"))
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestListCategoriesOrdered(t *testing.T) {
	store := catalog.NewFixtureStore()

	cats, err := store.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Music", cats[0].Name)
}

func TestListBookingsByUser(t *testing.T) {
	store := catalog.NewFixtureStore()
	ctx := context.Background()

	bookings, err := store.ListBookingsByUser(ctx, 123456789)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "evt2", bookings[0].EventID)
	assert.Equal(t, "evt3", bookings[1].EventID)

	none, err := store.ListBookingsByUser(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindEventReturnsCopies(t *testing.T) {
	store := catalog.NewFixtureStore()
	ctx := context.Background()

	ev1, err := store.FindEvent(ctx, "evt1")
	require.NoError(t, err)
	ev1.TicketTypes[0].SoldCount = 99999

	again, err := store.FindEvent(ctx, "evt1")
	require.NoError(t, err)
	assert.Equal(t, 3200, again.TicketTypes[0].SoldCount, "callers must not be able to mutate the fixture")
}

func eventIDs(events []model.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
