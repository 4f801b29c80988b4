package catalog

import (
	"context"

	"github.com/eventory/miniapp-storefront/internal/inventory"
	"github.com/eventory/miniapp-storefront/internal/model"
)

// liveStore overlays live inventory counters on top of another Store.
// Event lookups pass through it so SoldCount is read fresh each time.
type liveStore struct {
	Store
	counter inventory.Counter
}

// WithLiveCounts wraps store so that FindEvent and FilterEvents replace
// each ticket type's SoldCount with the live counter value when one
// exists.  Counter values are clamped to [0, Capacity]; the catalog value
// stands on a counter miss.  A nil counter returns the store unchanged.
func WithLiveCounts(store Store, counter inventory.Counter) Store {
	if counter == nil {
		return store
	}
	return &liveStore{Store: store, counter: counter}
}

func (s *liveStore) FindEvent(ctx context.Context, id string) (model.Event, error) {
	e, err := s.Store.FindEvent(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	s.overlay(ctx, &e)
	return e, nil
}

func (s *liveStore) FilterEvents(ctx context.Context, f BrowseFilter) ([]model.Event, error) {
	events, err := s.Store.FilterEvents(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range events {
		s.overlay(ctx, &events[i])
	}
	return events, nil
}

func (s *liveStore) overlay(ctx context.Context, e *model.Event) {
	for i := range e.TicketTypes {
		t := &e.TicketTypes[i]
		sold, ok := s.counter.SoldCount(ctx, t.ID)
		if !ok {
			continue
		}
		if sold > t.Capacity {
			sold = t.Capacity
		}
		t.SoldCount = sold
	}
}
