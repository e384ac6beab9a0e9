package store

import "github.com/melochey/storefront-api/models"

// Price derives the current totals for a cart under a discount percent.
// It is a pure function of its inputs and is called on every read rather
// than cached, so a stale total can never be observed after a mutation.
func Price(cart *Cart, discountPercent int) models.PricingSnapshot {
	return models.NewPricingSnapshot(cart.Subtotal(), discountPercent)
}
