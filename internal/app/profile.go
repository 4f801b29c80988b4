package app

import (
	"github.com/eventory/miniapp-storefront/internal/bridge"
	"github.com/eventory/miniapp-storefront/internal/model"
	"github.com/eventory/miniapp-storefront/internal/navigation"
)

// ProfileScreen projects the host-supplied identity.  Read-only; never
// binds the primary action.
type ProfileScreen struct {
	bridge *bridge.Bridge

	identity model.Identity
}

// Mount snapshots the identity for display.
func (s *ProfileScreen) Mount(_ navigation.State) {
	s.identity = s.bridge.Identity()
}

// Unmount clears the snapshot.
func (s *ProfileScreen) Unmount() {
	s.identity = model.Identity{}
}

// Identity returns the displayed user record.
func (s *ProfileScreen) Identity() model.Identity {
	return s.identity
}
