package store

import "github.com/melochey/storefront-api/models"

// Cart holds at most one line per product id, in insertion order.
// Re-adding a product bumps its quantity instead of appending a second
// line, and a line whose quantity would reach zero is removed outright.
// A Cart belongs to a single session and is not safe for concurrent use.
type Cart struct {
	items map[int]*models.CartItem
	order []int
}

func NewCart() *Cart {
	return &Cart{items: make(map[int]*models.CartItem)}
}

// Add puts one unit of the product into the cart.
func (c *Cart) Add(p models.Product) {
	if item, ok := c.items[p.ID]; ok {
		item.Quantity++
		return
	}
	c.items[p.ID] = &models.CartItem{Product: p, Quantity: 1}
	c.order = append(c.order, p.ID)
}

// UpdateQuantity adjusts a line's quantity by delta. Dropping to zero or
// below removes the line. An unknown product id is ignored, which covers
// the UI race where the line was already removed.
func (c *Cart) UpdateQuantity(productID, delta int) {
	item, ok := c.items[productID]
	if !ok {
		return
	}
	if item.Quantity+delta <= 0 {
		c.Remove(productID)
		return
	}
	item.Quantity += delta
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID int) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = make(map[int]*models.CartItem)
	c.order = nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

// ItemCount is the total number of units across all lines, used for the
// cart badge. Use Len for the number of lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Len is the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.order)
}

// Subtotal is the undiscounted sum over all lines.
func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, item := range c.items {
		sum += item.LineTotal()
	}
	return sum
}
