package app

import (
	"context"
	"log"

	"github.com/eventory/miniapp-storefront/internal/bridge"
	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
	"github.com/eventory/miniapp-storefront/internal/navigation"
)

// BookingEntry is one row of the bookings screen: a booking joined to
// its catalog event.
type BookingEntry struct {
	Booking model.Booking
	Event   model.Event
}

// ListBookingsForUser is the booking view model: it filters all bookings
// by owner and joins each to its event.  A booking whose event cannot be
// resolved is silently dropped — catalog/booking consistency is assumed
// but not guaranteed, and a violation must not break the screen.
func ListBookingsForUser(ctx context.Context, store catalog.Store, userID int64) []BookingEntry {
	bookings, err := store.ListBookingsByUser(ctx, userID)
	if err != nil {
		log.Printf("bookings: list for user %d: %v", userID, err)
		return nil
	}
	var out []BookingEntry
	for _, b := range bookings {
		ev, err := store.FindEvent(ctx, b.EventID)
		if err != nil {
			continue
		}
		out = append(out, BookingEntry{Booking: b, Event: ev})
	}
	return out
}

// BookingsScreen lists the current user's bookings.  It never binds the
// primary action.
type BookingsScreen struct {
	catalog catalog.Store
	bridge  *bridge.Bridge

	entries []BookingEntry
}

// Mount loads the bookings for the host-supplied identity.  A guest
// identity simply yields an empty list.
func (s *BookingsScreen) Mount(_ navigation.State) {
	s.entries = ListBookingsForUser(context.Background(), s.catalog, s.bridge.Identity().ID)
}

// Unmount drops the loaded entries.
func (s *BookingsScreen) Unmount() {
	s.entries = nil
}

// Entries returns the joined booking rows in catalog order.
func (s *BookingsScreen) Entries() []BookingEntry {
	return s.entries
}
