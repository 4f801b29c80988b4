// Package app wires the storefront screens to the navigation controller
// and the host bridge.  Each screen owns its screen-scoped state and
// tears it down in Unmount; the detail screen is the only one that ever
// touches the primary-action control, and only through the bridge.
package app

import (
	"github.com/eventory/miniapp-storefront/internal/bridge"
	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/navigation"
)

// Storefront is the assembled mini app: catalog access, host bridge,
// navigation controller and the four screens.
type Storefront struct {
	Catalog catalog.Store
	Bridge  *bridge.Bridge
	Nav     *navigation.Controller

	Home     *HomeScreen
	Details  *EventDetailsScreen
	Bookings *BookingsScreen
	Profile  *ProfileScreen
}

// New assembles the storefront over the given catalog and bridge.  No
// screen is mounted until Start.
func New(store catalog.Store, br *bridge.Bridge) *Storefront {
	nav := navigation.NewController()
	s := &Storefront{
		Catalog: store,
		Bridge:  br,
		Nav:     nav,
	}
	s.Home = &HomeScreen{catalog: store}
	s.Details = &EventDetailsScreen{catalog: store, bridge: br, nav: nav}
	s.Bookings = &BookingsScreen{catalog: store, bridge: br}
	s.Profile = &ProfileScreen{bridge: br}

	nav.Register(navigation.ScreenHome, s.Home)
	nav.Register(navigation.ScreenEventDetails, s.Details)
	nav.Register(navigation.ScreenMyBookings, s.Bookings)
	nav.Register(navigation.ScreenProfile, s.Profile)
	return s
}

// Start connects to the host and mounts the home screen.  While the host
// has not announced itself it returns bridge.ErrNotReady; the caller
// keeps the waiting state on display and retries.
func (s *Storefront) Start() error {
	if err := s.Bridge.Connect(); err != nil {
		return err
	}
	s.Nav.Navigate(navigation.ScreenHome, nil)
	return nil
}

// OpenEvent navigates to the detail screen for the given event id.
func (s *Storefront) OpenEvent(eventID string) {
	s.Nav.Navigate(navigation.ScreenEventDetails, navigation.Params{
		navigation.ParamEventID: eventID,
	})
}
