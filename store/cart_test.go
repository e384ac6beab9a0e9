package store

import (
	"testing"

	"github.com/melochey/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	screwdrivers = models.Product{ID: 1, Name: "Screwdriver set", Category: "tools", Price: 599}
	bulb         = models.Product{ID: 2, Name: "LED bulb E27", Category: "home", Price: 149}
)

func TestAdd_SameProductTwiceMergesIntoOneLine(t *testing.T) {
	cart := NewCart()

	cart.Add(screwdrivers)
	cart.Add(screwdrivers)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount())
	assert.Equal(t, 1, cart.Len())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()

	cart.Add(bulb)
	cart.Add(screwdrivers)
	cart.Add(bulb)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, bulb.ID, items[0].ID)
	assert.Equal(t, screwdrivers.ID, items[1].ID)
}

func TestUpdateQuantity_DroppingToZeroRemovesTheLine(t *testing.T) {
	cart := NewCart()
	cart.Add(screwdrivers)
	cart.Add(screwdrivers)

	cart.UpdateQuantity(screwdrivers.ID, -2)

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestUpdateQuantity_BelowZeroAlsoRemoves(t *testing.T) {
	cart := NewCart()
	cart.Add(bulb)

	cart.UpdateQuantity(bulb.ID, -5)

	assert.Empty(t, cart.Items())
}

func TestUpdateQuantity_UnknownIDIsANoOp(t *testing.T) {
	cart := NewCart()
	cart.Add(bulb)

	cart.UpdateQuantity(99, 1)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantity_PositiveDelta(t *testing.T) {
	cart := NewCart()
	cart.Add(bulb)

	cart.UpdateQuantity(bulb.ID, 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestRemove_UnknownIDIsANoOp(t *testing.T) {
	cart := NewCart()
	cart.Add(screwdrivers)

	cart.Remove(99)

	assert.Equal(t, 1, cart.Len())
}

func TestRemove_KeepsOrderOfRemainingLines(t *testing.T) {
	cart := NewCart()
	cart.Add(screwdrivers)
	cart.Add(bulb)

	cart.Remove(screwdrivers.ID)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, bulb.ID, items[0].ID)
}

func TestClear(t *testing.T) {
	cart := NewCart()
	cart.Add(screwdrivers)
	cart.Add(bulb)

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.ItemCount())

	// The cart stays usable after clearing.
	cart.Add(bulb)
	assert.Equal(t, 1, cart.Len())
}

func TestSubtotal(t *testing.T) {
	cart := NewCart()
	cart.Add(screwdrivers)
	cart.Add(bulb)
	cart.Add(bulb)

	assert.InDelta(t, 897.0, cart.Subtotal(), 1e-9)
}
