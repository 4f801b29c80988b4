package repository

import (
	"context"
	"database/sql"

	"github.com/eventory/miniapp-storefront/internal/model"
)

// BookingRepo manages read access to bookings.  Bookings are written by
// the external booking flow; the storefront only filters them by owner.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// ListByUser returns all bookings owned by userID ordered by creation.
// Unknown users yield an empty slice, never an error.
func (r *BookingRepo) ListByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	const q = `SELECT id, event_id, user_id, status, reference
               FROM bookings WHERE user_id = ? ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.EventID, &b.UserID, &b.Status, &b.Reference); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
