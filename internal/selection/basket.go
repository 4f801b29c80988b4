package selection

import "github.com/eventory/miniapp-storefront/internal/model"

// Basket aggregates the selection models for every ticket type of one
// displayed event.  A basket is scoped to one mounted detail screen: it
// is created when the screen mounts, discarded when the screen unmounts
// or the event id parameter changes, and never persisted across
// navigation.
type Basket struct {
	eventID string
	order   []string
	models  map[string]*Model
}

// NewBasket builds a basket with a zeroed selection model per ticket
// type, preserving the event's tier order.
func NewBasket(e model.Event) *Basket {
	b := &Basket{
		eventID: e.ID,
		models:  make(map[string]*Model, len(e.TicketTypes)),
	}
	for _, t := range e.TicketTypes {
		b.order = append(b.order, t.ID)
		b.models[t.ID] = NewModel(t)
	}
	return b
}

// EventID returns the event this basket belongs to.
func (b *Basket) EventID() string {
	return b.eventID
}

// Model returns the selection model for the given ticket type, or nil if
// the event has no such tier.
func (b *Basket) Model(ticketTypeID string) *Model {
	return b.models[ticketTypeID]
}

// TicketTypeIDs returns the tier ids in display order.
func (b *Basket) TicketTypeIDs() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// TotalQuantity sums the selected quantities across all tiers.
func (b *Basket) TotalQuantity() int {
	total := 0
	for _, id := range b.order {
		total += b.models[id].Current()
	}
	return total
}

// UpdateInventory refreshes every model from a reloaded copy of the same
// event, clamping quantities that now exceed availability.  Tiers that
// disappeared from the event keep their last numbers; new tiers are not
// added mid-mount.
func (b *Basket) UpdateInventory(e model.Event) {
	for _, t := range e.TicketTypes {
		if m, ok := b.models[t.ID]; ok {
			m.UpdateInventory(t)
		}
	}
}
