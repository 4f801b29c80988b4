package repository

import (
	"context"
	"database/sql"

	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
)

// SQLStore bundles the repositories into one catalog.Store, the "remote
// backend" flavor of the accessor.  SoldCount comes from the database on
// every call, so inventory written by the booking pipeline is read
// fresh per lookup even without a Redis overlay.
type SQLStore struct {
	events     *EventRepo
	organizers *OrganizerRepo
	categories *CategoryRepo
	bookings   *BookingRepo
}

// NewSQLStore builds a SQLStore over the given DB handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		events:     NewEventRepo(db),
		organizers: NewOrganizerRepo(db),
		categories: NewCategoryRepo(db),
		bookings:   NewBookingRepo(db),
	}
}

func (s *SQLStore) FindEvent(ctx context.Context, id string) (model.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *SQLStore) FindOrganizer(ctx context.Context, id string) (model.OrganizerProfile, error) {
	return s.organizers.GetByID(ctx, id)
}

func (s *SQLStore) ListCategories(ctx context.Context) ([]model.EventCategory, error) {
	return s.categories.ListAll(ctx)
}

func (s *SQLStore) FilterEvents(ctx context.Context, f catalog.BrowseFilter) ([]model.Event, error) {
	return s.events.ListByFilter(ctx, f)
}

func (s *SQLStore) ListBookingsByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}
