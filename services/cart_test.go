package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-order/models"
)

var (
	burger     = models.MenuItem{ID: "1", Name: "Classic Burger", Price: 12.99, CategoryID: "food", Available: true}
	cappuccino = models.MenuItem{ID: "3", Name: "Cappuccino", Price: 4.99, CategoryID: "drinks", Available: true}
)

func TestCartAddMergesAndRemoveDecrements(t *testing.T) {
	var cart Cart

	cart.Add(burger)
	cart.Add(burger)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Items()[0].Quantity)

	cart.Remove(burger.ID)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	cart.Remove(burger.ID)
	assert.Equal(t, 0, cart.Len())
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(cappuccino)

	cart.Remove("does-not-exist")
	cart.RemoveLine("does-not-exist")

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartTotal(t *testing.T) {
	var cart Cart
	cart.Add(burger)
	cart.Add(cappuccino)
	cart.Add(burger)

	assert.Equal(t, "30.97", cart.Total().StringFixed(2))
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, []string{"1", "3"}, []string{cart.Items()[0].MenuItemID, cart.Items()[1].MenuItemID})
}

func TestCartRemoveLineAndInstructions(t *testing.T) {
	var cart Cart
	cart.Add(burger)
	cart.Add(burger)
	cart.Add(cappuccino)

	assert.True(t, cart.SetInstructions(cappuccino.ID, "oat milk"))
	assert.False(t, cart.SetInstructions("nope", "x"))

	cart.RemoveLine(burger.ID)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "oat milk", items[0].SpecialInstructions)

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
}

func TestCartItemsIsACopy(t *testing.T) {
	var cart Cart
	cart.Add(burger)

	items := cart.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartServiceAdd(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	t.Run("unknown table", func(t *testing.T) {
		_, err := f.carts.Add(ctx, "missing", "1")
		assert.ErrorIs(t, err, ErrTableNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := f.carts.Add(ctx, "1", "missing")
		assert.ErrorIs(t, err, ErrMenuItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		off := false
		_, err := f.catalog.UpdateItem(ctx, "4", MenuItemUpdate{Available: &off})
		require.NoError(t, err)

		_, err = f.carts.Add(ctx, "1", "4")
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("carts are per table", func(t *testing.T) {
		view, err := f.carts.Add(ctx, "2", "3")
		require.NoError(t, err)
		assert.Equal(t, 1, view.ItemCount)
		assert.Equal(t, 4.99, view.Total)

		other, err := f.carts.Get(ctx, "3")
		require.NoError(t, err)
		assert.Empty(t, other.Items)
	})
}

func TestCartServiceSetInstructionsUnknownLine(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.carts.SetInstructions("1", "1", "no onions")
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}
