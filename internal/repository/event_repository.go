// Package repository is the MySQL-backed flavor of the catalog accessor.
// It mirrors the read-only query surface the app needs: events with their
// ordered ticket types, organizers, categories and per-user bookings.
// Unknown ids map sql.ErrNoRows to the catalog's sentinel errors so both
// store flavors miss the same way.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/model"
)

// EventRepo manages read access to events and their ticket types.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `id, title, description, starts_at, location, cover_url, featured, organizer_id, category_id, rating, review_count`

// GetByID retrieves one event with its ticket types in display order.
// It returns catalog.ErrEventNotFound when no row matches.
func (r *EventRepo) GetByID(ctx context.Context, id string) (model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	e, err := scanEvent(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, catalog.ErrEventNotFound
		}
		return model.Event{}, err
	}
	tts, err := r.ticketTypes(ctx, e.ID)
	if err != nil {
		return model.Event{}, err
	}
	e.TicketTypes = tts
	return e, nil
}

// ListByFilter returns the events of one browse view: featured events
// for the default selector, or a single category's events otherwise.
// Results are ordered by start time ascending; ticket types are attached
// per event.
func (r *EventRepo) ListByFilter(ctx context.Context, f catalog.BrowseFilter) ([]model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE featured = 1 ORDER BY starts_at ASC`
	args := []any{}
	if f.Mode == catalog.FilterByCategory {
		q = `SELECT ` + eventColumns + ` FROM events WHERE category_id = ? ORDER BY starts_at ASC`
		args = append(args, f.CategoryID)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range events {
		tts, err := r.ticketTypes(ctx, events[i].ID)
		if err != nil {
			return nil, err
		}
		events[i].TicketTypes = tts
	}
	return events, nil
}

// ticketTypes loads the tiers of one event ordered by their position
// column, which preserves the catalog's display order.
func (r *EventRepo) ticketTypes(ctx context.Context, eventID string) ([]model.TicketType, error) {
	const q = `SELECT id, event_id, name, price_cents, currency, capacity, sold_count
               FROM ticket_types WHERE event_id = ? ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tts []model.TicketType
	for rows.Next() {
		var t model.TicketType
		if err := rows.Scan(&t.ID, &t.EventID, &t.Name, &t.PriceCents, &t.Currency, &t.Capacity, &t.SoldCount); err != nil {
			return nil, err
		}
		tts = append(tts, t)
	}
	return tts, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.Event, error) {
	var (
		e        model.Event
		startsAt time.Time
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &startsAt, &e.Location,
		&e.CoverURL, &e.Featured, &e.OrganizerID, &e.CategoryID,
		&e.Rating, &e.ReviewCount,
	)
	if err != nil {
		return model.Event{}, err
	}
	e.StartsAt = startsAt.UTC()
	return e, nil
}
