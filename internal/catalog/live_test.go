package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventory/miniapp-storefront/internal/catalog"
)

// mapCounter serves sold counts from a plain map.
type mapCounter map[string]int

func (c mapCounter) SoldCount(_ context.Context, id string) (int, bool) {
	n, ok := c[id]
	return n, ok
}

func TestLiveCountsOverlay(t *testing.T) {
	store := catalog.WithLiveCounts(catalog.NewFixtureStore(), mapCounter{
		"tkt1a": 4100,  // moved since the catalog snapshot
		"tkt1b": 99999, // counter ran past capacity; must clamp
	})
	ctx := context.Background()

	ev, err := store.FindEvent(ctx, "evt1")
	require.NoError(t, err)

	assert.Equal(t, 4100, ev.TicketTypes[0].SoldCount)
	assert.Equal(t, 900, ev.TicketTypes[0].Availability())
	assert.Equal(t, 450, ev.TicketTypes[1].SoldCount, "overlay clamps to capacity")
	assert.True(t, ev.TicketTypes[1].SoldOut())
}

func TestLiveCountsMissKeepsCatalogValue(t *testing.T) {
	store := catalog.WithLiveCounts(catalog.NewFixtureStore(), mapCounter{})

	ev, err := store.FindEvent(context.Background(), "evt2")
	require.NoError(t, err)
	assert.Equal(t, 195, ev.TicketTypes[1].SoldCount)
}

func TestLiveCountsAppliesToFilteredEvents(t *testing.T) {
	store := catalog.WithLiveCounts(catalog.NewFixtureStore(), mapCounter{"tkt3a": 9000})

	events, err := store.FilterEvents(context.Background(), catalog.Featured())
	require.NoError(t, err)
	for _, e := range events {
		if e.ID == "evt3" {
			assert.Equal(t, 9000, e.TicketTypes[0].SoldCount)
		}
	}
}

func TestWithLiveCountsNilCounter(t *testing.T) {
	base := catalog.NewFixtureStore()
	assert.Equal(t, catalog.Store(base), catalog.WithLiveCounts(base, nil))
}
