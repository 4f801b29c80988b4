// Package catalog defines the read-only query surface over events,
// organizers, categories and bookings.  The app is agnostic to whether a
// Store is backed by local fixture data, MySQL, or a remote service;
// lookups for unknown ids return sentinel errors rather than failing
// hard, and callers are expected to render an empty or placeholder state
// on a miss instead of treating it as fatal.
package catalog

import (
	"context"
	"errors"

	"github.com/eventory/miniapp-storefront/internal/model"
)

// ErrEventNotFound indicates that no event exists for the requested id.
// A miss is a normal outcome, not a failure.
var ErrEventNotFound = errors.New("event not found")

// ErrOrganizerNotFound indicates that no organizer exists for the
// requested id.
var ErrOrganizerNotFound = errors.New("organizer not found")

// FilterMode selects which of the two mutually exclusive browse views is
// active.  Exactly one mode applies at a time; the home screen's selector
// defaults to featured.
type FilterMode string

const (
	FilterFeatured   FilterMode = "featured"
	FilterByCategory FilterMode = "category"
)

// BrowseFilter describes the single-selector event filter.  CategoryID is
// only meaningful when Mode is FilterByCategory.
type BrowseFilter struct {
	Mode       FilterMode
	CategoryID string
}

// Featured returns the default browse filter.
func Featured() BrowseFilter {
	return BrowseFilter{Mode: FilterFeatured}
}

// ByCategory returns a filter selecting events of a single category.
func ByCategory(categoryID string) BrowseFilter {
	return BrowseFilter{Mode: FilterByCategory, CategoryID: categoryID}
}

// Matches reports whether the event falls inside the filter.  An unknown
// mode behaves like featured so a malformed filter never widens the view.
func (f BrowseFilter) Matches(e model.Event) bool {
	if f.Mode == FilterByCategory {
		return e.CategoryID == f.CategoryID
	}
	return e.Featured
}

// Store is the catalog query surface.  All methods take a context so an
// asynchronous backend fits without changing call shapes, even though the
// in-memory adapter resolves synchronously.
type Store interface {
	// FindEvent returns the event with the given id, including its
	// ordered ticket types, or ErrEventNotFound.
	FindEvent(ctx context.Context, id string) (model.Event, error)

	// FindOrganizer returns the organizer profile for the given id, or
	// ErrOrganizerNotFound.
	FindOrganizer(ctx context.Context, id string) (model.OrganizerProfile, error)

	// ListCategories returns the fixed, ordered set of event categories.
	ListCategories(ctx context.Context) ([]model.EventCategory, error)

	// FilterEvents returns the events matching the browse filter, in
	// catalog order.  An empty result is not an error.
	FilterEvents(ctx context.Context, f BrowseFilter) ([]model.Event, error)

	// ListBookingsByUser returns all bookings owned by the given user,
	// in catalog order.  Unknown users yield an empty slice.
	ListBookingsByUser(ctx context.Context, userID int64) ([]model.Booking, error)
}
