package app

import (
	"context"
	"log"

	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
	"github.com/eventory/miniapp-storefront/internal/navigation"
)

// HomeScreen shows the browsable event list behind a single
// mutually-exclusive selector: "featured" (the default) or exactly one
// category.  It never binds the primary action.
type HomeScreen struct {
	catalog catalog.Store

	filter     catalog.BrowseFilter
	categories []model.EventCategory
	events     []model.Event
}

// Mount resets the selector to featured and loads categories and events.
// Lookup failures log and leave the lists empty; the screen renders a
// placeholder state rather than failing.
func (s *HomeScreen) Mount(_ navigation.State) {
	s.filter = catalog.Featured()
	ctx := context.Background()

	cats, err := s.catalog.ListCategories(ctx)
	if err != nil {
		log.Printf("home: list categories: %v", err)
		cats = nil
	}
	s.categories = cats
	s.reload()
}

// Unmount drops the loaded projections.  The filter is screen-scoped and
// does not survive navigation away.
func (s *HomeScreen) Unmount() {
	s.categories = nil
	s.events = nil
}

// SelectFeatured switches the selector back to the featured view.
func (s *HomeScreen) SelectFeatured() {
	s.filter = catalog.Featured()
	s.reload()
}

// SelectCategory switches the selector to a single category, replacing
// whatever was selected before.
func (s *HomeScreen) SelectCategory(categoryID string) {
	s.filter = catalog.ByCategory(categoryID)
	s.reload()
}

// Filter returns the active browse filter.
func (s *HomeScreen) Filter() catalog.BrowseFilter {
	return s.filter
}

// Categories returns the category selector entries.
func (s *HomeScreen) Categories() []model.EventCategory {
	return s.categories
}

// Events returns the events of the active view, freshly overlaid with
// live inventory when a counter source is configured.
func (s *HomeScreen) Events() []model.Event {
	return s.events
}

func (s *HomeScreen) reload() {
	events, err := s.catalog.FilterEvents(context.Background(), s.filter)
	if err != nil {
		log.Printf("home: filter events: %v", err)
		events = nil
	}
	s.events = events
}
