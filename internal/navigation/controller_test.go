package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventory/miniapp-storefront/internal/navigation"
)

// recordingView appends mount/unmount events to a shared journal so the
// tests can assert on ordering across screens.
type recordingView struct {
	name    string
	journal *[]string
	last    navigation.State
}

func (v *recordingView) Mount(s navigation.State) {
	v.last = s
	*v.journal = append(*v.journal, "mount:"+v.name)
}

func (v *recordingView) Unmount() {
	*v.journal = append(*v.journal, "unmount:"+v.name)
}

func newTestController() (*navigation.Controller, *[]string) {
	journal := &[]string{}
	c := navigation.NewController()
	c.Register(navigation.ScreenHome, &recordingView{name: "home", journal: journal})
	c.Register(navigation.ScreenEventDetails, &recordingView{name: "details", journal: journal})
	c.Register(navigation.ScreenMyBookings, &recordingView{name: "bookings", journal: journal})
	return c, journal
}

func TestInitialStateIsHome(t *testing.T) {
	c := navigation.NewController()
	assert.Equal(t, navigation.ScreenHome, c.State().Screen)
}

func TestNavigateReplacesStateWholesale(t *testing.T) {
	c, _ := newTestController()

	c.Navigate(navigation.ScreenEventDetails, navigation.Params{navigation.ParamEventID: "evt1"})
	assert.Equal(t, navigation.ScreenEventDetails, c.State().Screen)
	assert.Equal(t, "evt1", c.State().Params.Get(navigation.ParamEventID))

	// The next navigation replaces the bag entirely; nothing leaks over.
	c.Navigate(navigation.ScreenMyBookings, nil)
	assert.Equal(t, navigation.ScreenMyBookings, c.State().Screen)
	assert.Equal(t, "", c.State().Params.Get(navigation.ParamEventID))
}

func TestUnmountRunsBeforeNextMount(t *testing.T) {
	c, journal := newTestController()

	c.Navigate(navigation.ScreenHome, nil)
	c.Navigate(navigation.ScreenEventDetails, navigation.Params{navigation.ParamEventID: "evt1"})
	c.Navigate(navigation.ScreenMyBookings, nil)

	assert.Equal(t, []string{
		"mount:home",
		"unmount:home",
		"mount:details",
		"unmount:details",
		"mount:bookings",
	}, *journal)
}

func TestUnknownScreenFallsBackToHome(t *testing.T) {
	c, journal := newTestController()

	c.Navigate(navigation.Screen("checkout"), navigation.Params{"x": "y"})

	assert.Equal(t, navigation.ScreenHome, c.State().Screen)
	assert.Equal(t, "", c.State().Params.Get("x"), "params of an unknown screen are dropped")
	assert.Equal(t, []string{"mount:home"}, *journal)
}

func TestScrollResetFiresOnEveryNavigation(t *testing.T) {
	c, _ := newTestController()
	resets := 0
	c.OnScrollReset(func() { resets++ })

	c.Navigate(navigation.ScreenHome, nil)
	c.Navigate(navigation.ScreenMyBookings, nil)
	c.Navigate(navigation.ScreenMyBookings, nil)

	assert.Equal(t, 3, resets)
}

func TestUnregisteredScreenMountsNothing(t *testing.T) {
	c := navigation.NewController()
	// No views registered at all; navigation still transitions state.
	c.Navigate(navigation.ScreenProfile, nil)
	assert.Equal(t, navigation.ScreenProfile, c.State().Screen)
}
