// Package selection models the per-ticket-type quantity a user has
// picked on the event-detail screen.  Quantities are bounded by live
// availability and a hard per-order cap; boundary hits saturate silently
// instead of raising, because a disabled stepper is a displayed state,
// not an error.
package selection

import "github.com/eventory/miniapp-storefront/internal/model"

// MaxPerOrder is the hard cap on tickets of one type in a single order,
// regardless of availability.
const MaxPerOrder = 10

// Model tracks the selected quantity for one ticket type.  The invariant
// 0 <= quantity <= min(MaxPerOrder, availability) holds after every
// operation.  A sold-out type is locked at zero.
type Model struct {
	capacity int
	sold     int
	quantity int
}

// NewModel builds a selection model from the ticket type's current
// inventory numbers.  Quantity starts at zero.
func NewModel(t model.TicketType) *Model {
	return &Model{capacity: t.Capacity, sold: t.SoldCount}
}

// Availability returns how many tickets remain selectable, never
// negative.
func (m *Model) Availability() int {
	a := m.capacity - m.sold
	if a < 0 {
		return 0
	}
	return a
}

// SoldOut reports whether the type has no remaining availability.
func (m *Model) SoldOut() bool {
	return m.Availability() == 0
}

// Current returns the selected quantity.
func (m *Model) Current() int {
	return m.quantity
}

// limit is the ceiling the quantity saturates at.
func (m *Model) limit() int {
	if a := m.Availability(); a < MaxPerOrder {
		return a
	}
	return MaxPerOrder
}

// Increment raises the quantity by one, saturating at
// min(MaxPerOrder, availability).  On a sold-out type it is a no-op.
func (m *Model) Increment() {
	if m.quantity < m.limit() {
		m.quantity++
	}
}

// Decrement lowers the quantity by one, saturating at zero.
func (m *Model) Decrement() {
	if m.quantity > 0 {
		m.quantity--
	}
}

// UpdateInventory replaces the inventory numbers after a reload of the
// same ticket type and clamps the quantity back inside the new bound, so
// a selection never exceeds availability that shrank underneath it.
func (m *Model) UpdateInventory(t model.TicketType) {
	m.capacity = t.Capacity
	m.sold = t.SoldCount
	if lim := m.limit(); m.quantity > lim {
		m.quantity = lim
	}
}
