package services

import (
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/table-order/models"
)

// Cart accumulates the lines a seated table is about to order. Lines keep
// the order in which items were first added. The zero value is empty.
type Cart struct {
	lines []models.OrderItem
}

// Add merges the item into an existing line or appends a new line with
// quantity 1.
func (c *Cart) Add(item models.MenuItem) {
	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, item.Snapshot())
}

// Remove takes one unit off the line. A line never stays at quantity 0.
// Removing an item that is not in the cart does nothing.
func (c *Cart) Remove(menuItemID string) {
	i := c.index(menuItemID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// RemoveLine drops the whole line regardless of quantity.
func (c *Cart) RemoveLine(menuItemID string) {
	if i := c.index(menuItemID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetInstructions reports false when the item is not in the cart.
func (c *Cart) SetInstructions(menuItemID, text string) bool {
	i := c.index(menuItemID)
	if i < 0 {
		return false
	}
	c.lines[i].SpecialInstructions = text
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Items returns a copy of the lines.
func (c *Cart) Items() []models.OrderItem {
	out := make([]models.OrderItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

func (c *Cart) Total() decimal.Decimal {
	return models.SumLines(c.lines)
}

func (c *Cart) index(menuItemID string) int {
	for i, line := range c.lines {
		if line.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}
