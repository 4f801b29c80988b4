package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventory/miniapp-storefront/internal/model"
	"github.com/eventory/miniapp-storefront/internal/selection"
)

func TestIncrementCapsAtPerOrderMax(t *testing.T) {
	// tkt1a: plenty of availability, the per-order cap is the binding
	// constraint.
	m := selection.NewModel(model.TicketType{ID: "tkt1a", Capacity: 5000, SoldCount: 3200})
	assert.Equal(t, 1800, m.Availability())

	for i := 0; i < 10; i++ {
		m.Increment()
	}
	assert.Equal(t, 10, m.Current())

	// The 11th increment saturates silently.
	m.Increment()
	assert.Equal(t, 10, m.Current())
}

func TestIncrementCapsAtAvailability(t *testing.T) {
	// tkt2b: only 5 left, availability binds before the per-order cap.
	m := selection.NewModel(model.TicketType{ID: "tkt2b", Capacity: 200, SoldCount: 195})
	assert.Equal(t, 5, m.Availability())

	for i := 0; i < 5; i++ {
		m.Increment()
	}
	assert.Equal(t, 5, m.Current())

	m.Increment()
	assert.Equal(t, 5, m.Current())
}

func TestSoldOutLockedAtZero(t *testing.T) {
	m := selection.NewModel(model.TicketType{ID: "tkt1b", Capacity: 450, SoldCount: 450})

	assert.True(t, m.SoldOut())
	assert.Equal(t, 0, m.Availability())

	m.Increment()
	assert.Equal(t, 0, m.Current(), "increment on a sold-out type must be a no-op")
}

func TestNotSoldOutWhileCapacityRemains(t *testing.T) {
	m := selection.NewModel(model.TicketType{ID: "tkt3a", Capacity: 10000, SoldCount: 3450})
	assert.False(t, m.SoldOut())
}

func TestDecrementFloorsAtZero(t *testing.T) {
	m := selection.NewModel(model.TicketType{Capacity: 100, SoldCount: 0})

	m.Decrement()
	assert.Equal(t, 0, m.Current())

	m.Increment()
	m.Decrement()
	m.Decrement()
	assert.Equal(t, 0, m.Current())
}

func TestUpdateInventoryClampsSelection(t *testing.T) {
	m := selection.NewModel(model.TicketType{Capacity: 100, SoldCount: 90})
	for i := 0; i < 10; i++ {
		m.Increment()
	}
	assert.Equal(t, 10, m.Current())

	// Inventory shrank underneath the selection.
	m.UpdateInventory(model.TicketType{Capacity: 100, SoldCount: 97})
	assert.Equal(t, 3, m.Current())
	assert.Equal(t, 3, m.Availability())
}

func TestBasketScopedToEvent(t *testing.T) {
	ev := model.Event{
		ID: "evt2",
		TicketTypes: []model.TicketType{
			{ID: "tkt2a", EventID: "evt2", Capacity: 300, SoldCount: 120},
			{ID: "tkt2b", EventID: "evt2", Capacity: 200, SoldCount: 195},
		},
	}
	b := selection.NewBasket(ev)

	assert.Equal(t, "evt2", b.EventID())
	assert.Equal(t, []string{"tkt2a", "tkt2b"}, b.TicketTypeIDs())
	assert.Nil(t, b.Model("tkt9z"))

	b.Model("tkt2a").Increment()
	b.Model("tkt2a").Increment()
	b.Model("tkt2b").Increment()
	assert.Equal(t, 3, b.TotalQuantity())
}
