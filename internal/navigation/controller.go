// Package navigation holds the single-page-view state machine: which
// screen is active and with what parameters.  Navigation replaces the
// state wholesale; screen-scoped state (selection baskets, primary-action
// bindings) is owned by the screens themselves and torn down through
// their unmount contract, never by the controller.
package navigation

import "log"

// Screen identifies one of the app's views.
type Screen string

const (
	ScreenHome         Screen = "home"
	ScreenEventDetails Screen = "event_details"
	ScreenMyBookings   Screen = "my_bookings"
	ScreenProfile      Screen = "profile"
)

// ParamEventID is the parameter key carrying the event id for the
// event-detail screen.
const ParamEventID = "event_id"

// Params is the opaque parameter bag scoped to one navigation state.
type Params map[string]string

// Get returns the value for key, or empty when absent (including on a
// nil bag).
func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// State is the current screen plus its parameters.  It is replaced
// wholesale on every navigation action and never partially mutated.
type State struct {
	Screen Screen
	Params Params
}

// View is the mount contract every screen implements.  Mount is called
// when the screen becomes active; Unmount when the controller transitions
// away, and must tear down all screen-scoped state (bindings, baskets).
type View interface {
	Mount(s State)
	Unmount()
}

// Controller is the navigation state machine.  Initial state is home; no
// screen is terminal and there are no guard conditions, so any screen is
// reachable from any other.  Like the rest of the core it runs on the
// single UI goroutine.
type Controller struct {
	views  map[Screen]View
	state  State
	active View

	// onScrollReset, when set, is invoked on every navigation as the
	// observable scroll-to-top side effect.
	onScrollReset func()
}

// NewController builds a controller with no screens registered and the
// state set to home.  Nothing is mounted until the first Navigate call.
func NewController() *Controller {
	return &Controller{
		views: make(map[Screen]View),
		state: State{Screen: ScreenHome},
	}
}

// Register attaches the view implementing the given screen.  Registering
// twice replaces the earlier view.
func (c *Controller) Register(s Screen, v View) {
	c.views[s] = v
}

// OnScrollReset installs the scroll-reset hook.
func (c *Controller) OnScrollReset(fn func()) {
	c.onScrollReset = fn
}

// State returns the current navigation state.
func (c *Controller) State() State {
	return c.state
}

// Navigate unconditionally replaces the current screen and parameters.
// Unknown screen identifiers fall back to home.  The outgoing screen's
// Unmount runs strictly before the incoming screen's Mount, so a
// re-entrant navigation (a primary-action callback navigating away) has
// released its binding before the new screen can observe it.
func (c *Controller) Navigate(s Screen, params Params) {
	switch s {
	case ScreenHome, ScreenEventDetails, ScreenMyBookings, ScreenProfile:
	default:
		log.Printf("navigation: unknown screen %q, falling back to home", s)
		s = ScreenHome
		params = nil
	}

	if c.active != nil {
		c.active.Unmount()
	}
	c.state = State{Screen: s, Params: params}
	if c.onScrollReset != nil {
		c.onScrollReset()
	}
	c.active = c.views[s]
	if c.active != nil {
		c.active.Mount(c.state)
	}
}
