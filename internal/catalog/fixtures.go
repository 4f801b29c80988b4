package catalog

import (
	"time"

	"github.com/eventory/miniapp-storefront/internal/model"
)

// NewFixtureStore returns a MemoryStore seeded with the demo catalog used
// by cmd/storefront, cmd/catalogd and the test suites.  Sold counts here
// are the catalog's last-known values; a live inventory overlay may
// supersede them at lookup time.
func NewFixtureStore() *MemoryStore {
	categories := []model.EventCategory{
		{ID: "cat-music", Name: "Music", Glyph: "🎵"},
		{ID: "cat-tech", Name: "Tech", Glyph: "💻"},
		{ID: "cat-art", Name: "Art", Glyph: "🎨"},
	}

	organizers := []model.OrganizerProfile{
		{ID: "org1", Name: "Northside Live", ImageURL: "https://img.example/org1.png", Verified: true},
		{ID: "org2", Name: "Loop Collective", ImageURL: "https://img.example/org2.png"},
	}

	events := []model.Event{
		{
			ID:          "evt1",
			Title:       "Harbor Lights Festival",
			Description: "Two stages of live acts on the waterfront.",
			StartsAt:    time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
			Location:    "Pier 14, Harbor District",
			CoverURL:    "https://img.example/evt1.jpg",
			Featured:    true,
			OrganizerID: "org1",
			CategoryID:  "cat-music",
			Rating:      4.6,
			ReviewCount: 812,
			TicketTypes: []model.TicketType{
				{ID: "tkt1a", EventID: "evt1", Name: "General Admission", PriceCents: 4500, Currency: "USD", Capacity: 5000, SoldCount: 3200},
				{ID: "tkt1b", EventID: "evt1", Name: "VIP Deck", PriceCents: 12000, Currency: "USD", Capacity: 450, SoldCount: 450},
			},
		},
		{
			ID:          "evt2",
			Title:       "Ship It: Systems Night",
			Description: "Talks on running software that stays up.",
			StartsAt:    time.Date(2026, 10, 2, 19, 30, 0, 0, time.UTC),
			Location:    "Foundry Hall, Room B",
			CoverURL:    "https://img.example/evt2.jpg",
			OrganizerID: "org2",
			CategoryID:  "cat-tech",
			Rating:      4.2,
			ReviewCount: 97,
			TicketTypes: []model.TicketType{
				{ID: "tkt2a", EventID: "evt2", Name: "Standard", PriceCents: 1500, Currency: "USD", Capacity: 300, SoldCount: 120},
				{ID: "tkt2b", EventID: "evt2", Name: "Front Row", PriceCents: 3000, Currency: "USD", Capacity: 200, SoldCount: 195},
			},
		},
		{
			ID:          "evt3",
			Title:       "Open Canvas Weekend",
			Description: "A city-wide open studio and gallery crawl.",
			StartsAt:    time.Date(2026, 11, 7, 11, 0, 0, 0, time.UTC),
			Location:    "Riverside Arts Quarter",
			CoverURL:    "https://img.example/evt3.jpg",
			Featured:    true,
			OrganizerID: "org1",
			CategoryID:  "cat-art",
			Rating:      4.9,
			ReviewCount: 1304,
			TicketTypes: []model.TicketType{
				{ID: "tkt3a", EventID: "evt3", Name: "Weekend Pass", PriceCents: 2500, Currency: "USD", Capacity: 10000, SoldCount: 3450},
			},
		},
	}

	bookings := []model.Booking{
		{ID: "bkg1", EventID: "evt2", UserID: 123456789, Status: model.BookingConfirmed, Reference: "EV-7F2K9Q"},
		{ID: "bkg2", EventID: "evt3", UserID: 123456789, Status: model.BookingConfirmed, Reference: "EV-3TQX1M"},
		{ID: "bkg3", EventID: "evt1", UserID: 987654321, Status: model.BookingCancelled, Reference: "EV-9ZZB4D"},
	}

	return NewMemoryStore(events, organizers, categories, bookings)
}
