package model

import "time"

// EventCategory is static reference data used by the home screen's
// category selector.  Glyph is an opaque display hint (an emoji or icon
// name); the core never interprets it.
type EventCategory struct {
	ID    string
	Name  string
	Glyph string
}

// OrganizerProfile is static reference data describing the party hosting
// an event.  Verified marks organizers vetted by the platform.
type OrganizerProfile struct {
	ID       string
	Name     string
	ImageURL string
	Verified bool
}

// TicketType is one sellable tier of an event.  Capacity is the total
// number of tickets that exist; SoldCount is how many have been sold so
// far and is expected to satisfy 0 <= SoldCount <= Capacity.  SoldCount
// originates outside the app (live inventory counters) and is read fresh
// on each catalog lookup, never mutated here.
//
// Fields:
//  ID         – ticket type identifier, unique across the catalog.
//  EventID    – the event this tier belongs to.
//  Name       – tier label shown to the user (e.g. "General Admission").
//  PriceCents – non-negative price in minor currency units.
//  Currency   – ISO 4217 currency code for PriceCents.
//  Capacity   – total tickets in this tier, positive.
//  SoldCount  – tickets already sold, 0 <= SoldCount <= Capacity.
type TicketType struct {
	ID         string
	EventID    string
	Name       string
	PriceCents uint32
	Currency   string
	Capacity   int
	SoldCount  int
}

// Availability returns the number of tickets still selectable.  It is
// derived and never stored; a negative difference (which would indicate a
// counter glitch upstream) is reported as zero.
func (t TicketType) Availability() int {
	a := t.Capacity - t.SoldCount
	if a < 0 {
		return 0
	}
	return a
}

// SoldOut reports whether no tickets remain in this tier.
func (t TicketType) SoldOut() bool {
	return t.Availability() == 0
}

// Event is a bookable event in the catalog.  TicketTypes is an ordered
// sequence and every element belongs to exactly this event.
//
// Fields:
//  ID          – event identifier.
//  Title       – display title.
//  Description – longer descriptive text.
//  StartsAt    – when the event begins (UTC).
//  Location    – human-readable venue description.
//  CoverURL    – cover image reference.
//  Featured    – whether the event appears in the default "featured" view.
//  OrganizerID – foreign key into organizer profiles.
//  CategoryID  – foreign key into event categories.
//  TicketTypes – ordered sellable tiers, all with EventID == ID.
//  Rating      – aggregate review rating in [0, 5].
//  ReviewCount – number of reviews behind Rating.
type Event struct {
	ID          string
	Title       string
	Description string
	StartsAt    time.Time
	Location    string
	CoverURL    string
	Featured    bool
	OrganizerID string
	CategoryID  string
	TicketTypes []TicketType
	Rating      float64
	ReviewCount int
}

// TicketType returns the tier with the given id, or nil if the event has
// no such tier.
func (e *Event) TicketType(id string) *TicketType {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].ID == id {
			return &e.TicketTypes[i]
		}
	}
	return nil
}
