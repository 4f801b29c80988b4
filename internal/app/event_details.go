package app

import (
	"context"
	"errors"
	"log"

	"github.com/eventory/miniapp-storefront/internal/bridge"
	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
	"github.com/eventory/miniapp-storefront/internal/navigation"
	"github.com/eventory/miniapp-storefront/internal/selection"
)

// BookLabel is the primary-action text on the detail screen.
const BookLabel = "Book Now"

// EventDetailsScreen displays one event and owns the two pieces of
// screen-scoped state in the app: the selection basket and the
// primary-action binding.  Both are created on mount and torn down on
// unmount, so navigating away always leaves the host control hidden and
// unbound.
type EventDetailsScreen struct {
	catalog catalog.Store
	bridge  *bridge.Bridge
	nav     *navigation.Controller

	eventID   string
	event     *model.Event
	organizer *model.OrganizerProfile
	basket    *selection.Basket
	binding   bridge.BindingToken
}

// Mount reads the event id parameter and loads the event.  An unknown id
// leaves the screen in its empty state indefinitely: no binding is ever
// installed because there is no event to parameterize it with.
func (s *EventDetailsScreen) Mount(st navigation.State) {
	s.eventID = st.Params.Get(navigation.ParamEventID)
	s.event = nil
	s.organizer = nil
	s.basket = nil
	s.reload()
}

// Unmount releases the binding and discards the basket.  This is the
// structural guarantee that a primary-action callback never fires after
// its screen has navigated away.
func (s *EventDetailsScreen) Unmount() {
	s.bridge.ReleasePrimaryAction(s.binding)
	s.binding = bridge.NoBinding
	s.event = nil
	s.organizer = nil
	s.basket = nil
}

// Refresh re-reads the event from the catalog, picking up inventory that
// changed while the screen was on display.  The basket survives a
// refresh of the same event (with quantities clamped to the new
// availability); a changed event id under the same mount replaces it.
func (s *EventDetailsScreen) Refresh() {
	s.reload()
}

// reload is the one place the binding transitions.  Whenever the loaded
// event changes, the previous binding is released strictly before the
// new one is installed.
func (s *EventDetailsScreen) reload() {
	ctx := context.Background()
	ev, err := s.catalog.FindEvent(ctx, s.eventID)
	if err != nil {
		if !errors.Is(err, catalog.ErrEventNotFound) {
			log.Printf("details: find event %q: %v", s.eventID, err)
		}
		s.bridge.ReleasePrimaryAction(s.binding)
		s.binding = bridge.NoBinding
		s.event = nil
		s.organizer = nil
		s.basket = nil
		return
	}
	s.event = &ev

	if org, err := s.catalog.FindOrganizer(ctx, ev.OrganizerID); err == nil {
		s.organizer = &org
	} else {
		// Organizer absence is a placeholder state, not a failure.
		s.organizer = nil
	}

	if s.basket == nil || s.basket.EventID() != ev.ID {
		s.basket = selection.NewBasket(ev)
	} else {
		s.basket.UpdateInventory(ev)
	}

	tok, err := s.bridge.Rebind(s.binding, BookLabel, s.onActivate)
	if err != nil {
		log.Printf("details: bind primary action: %v", err)
		s.binding = bridge.NoBinding
		return
	}
	s.binding = tok
}

// onActivate runs when the user presses the host's primary-action
// control.  It emits the booking intent and navigates to the bookings
// screen; the navigation unmounts this screen, which releases the
// binding before the bookings screen mounts.
func (s *EventDetailsScreen) onActivate() {
	if s.event == nil {
		return
	}
	if err := s.bridge.EmitBookingIntent(s.event.ID); err != nil {
		log.Printf("details: emit booking intent: %v", err)
	}
	s.nav.Navigate(navigation.ScreenMyBookings, nil)
}

// Loaded reports whether an event is on display (false is the empty /
// loading state).
func (s *EventDetailsScreen) Loaded() bool {
	return s.event != nil
}

// Event returns the displayed event, or nil in the empty state.
func (s *EventDetailsScreen) Event() *model.Event {
	return s.event
}

// Organizer returns the displayed organizer profile, or nil when the
// lookup missed.
func (s *EventDetailsScreen) Organizer() *model.OrganizerProfile {
	return s.organizer
}

// Basket returns the selection basket, or nil in the empty state.
func (s *EventDetailsScreen) Basket() *selection.Basket {
	return s.basket
}

// Increment raises the selected quantity for a tier; unknown tiers and
// the empty state are no-ops.
func (s *EventDetailsScreen) Increment(ticketTypeID string) {
	if s.basket == nil {
		return
	}
	if m := s.basket.Model(ticketTypeID); m != nil {
		m.Increment()
	}
}

// Decrement lowers the selected quantity for a tier; unknown tiers and
// the empty state are no-ops.
func (s *EventDetailsScreen) Decrement(ticketTypeID string) {
	if s.basket == nil {
		return
	}
	if m := s.basket.Model(ticketTypeID); m != nil {
		m.Decrement()
	}
}
