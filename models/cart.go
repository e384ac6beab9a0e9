package models

// CartItem pairs a catalog product with the quantity held in the cart.
// Quantity is never below 1; an item that would drop to 0 is removed
// from the cart instead.
type CartItem struct {
	Product  `yaml:",inline"`
	Quantity int `json:"quantity" yaml:"quantity"`
}

// LineTotal is the item's contribution to the cart subtotal.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
