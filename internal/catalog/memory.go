package catalog

import (
	"context"

	"github.com/eventory/miniapp-storefront/internal/model"
)

// MemoryStore is an in-memory Store used as the mocked catalog backend.
// The collections are treated as immutable for the session; lookups copy
// event values so callers cannot alias the backing slices.
type MemoryStore struct {
	events     []model.Event
	organizers map[string]model.OrganizerProfile
	categories []model.EventCategory
	bookings   []model.Booking
}

// NewMemoryStore builds a MemoryStore over the given collections.  The
// slices are kept by reference and must not be mutated afterwards.
func NewMemoryStore(events []model.Event, organizers []model.OrganizerProfile, categories []model.EventCategory, bookings []model.Booking) *MemoryStore {
	byID := make(map[string]model.OrganizerProfile, len(organizers))
	for _, o := range organizers {
		byID[o.ID] = o
	}
	return &MemoryStore{
		events:     events,
		organizers: byID,
		categories: categories,
		bookings:   bookings,
	}
}

// FindEvent returns a copy of the event with the given id.  The ticket
// type slice is cloned so overlays and selection models never write back
// into the fixture data.
func (s *MemoryStore) FindEvent(_ context.Context, id string) (model.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return cloneEvent(e), nil
		}
	}
	return model.Event{}, ErrEventNotFound
}

// FindOrganizer returns the organizer profile for the given id.
func (s *MemoryStore) FindOrganizer(_ context.Context, id string) (model.OrganizerProfile, error) {
	o, ok := s.organizers[id]
	if !ok {
		return model.OrganizerProfile{}, ErrOrganizerNotFound
	}
	return o, nil
}

// ListCategories returns the categories in fixture order.
func (s *MemoryStore) ListCategories(_ context.Context) ([]model.EventCategory, error) {
	out := make([]model.EventCategory, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// FilterEvents returns the events matching f, in fixture order.
func (s *MemoryStore) FilterEvents(_ context.Context, f BrowseFilter) ([]model.Event, error) {
	var out []model.Event
	for _, e := range s.events {
		if f.Matches(e) {
			out = append(out, cloneEvent(e))
		}
	}
	return out, nil
}

// ListBookingsByUser returns bookings owned by userID in fixture order.
// Unknown users get an empty slice, never an error.
func (s *MemoryStore) ListBookingsByUser(_ context.Context, userID int64) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func cloneEvent(e model.Event) model.Event {
	tts := make([]model.TicketType, len(e.TicketTypes))
	copy(tts, e.TicketTypes)
	e.TicketTypes = tts
	return e
}
