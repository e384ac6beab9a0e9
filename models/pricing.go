package models

import "math"

// PricingSnapshot is the derived view of a cart under the active discount.
// It is recomputed on every read and never stored, so it cannot go stale
// against the cart it was priced from.
type PricingSnapshot struct {
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	Total           float64 `json:"total"`

	// Display values rounded to the nearest whole currency unit.
	// The exact values above are authoritative for export.
	DisplayDiscount int64 `json:"display_discount"`
	DisplayTotal    int64 `json:"display_total"`
}

// NewPricingSnapshot derives totals from a subtotal and a discount percent.
func NewPricingSnapshot(subtotal float64, discountPercent int) PricingSnapshot {
	discountAmount := subtotal * float64(discountPercent) / 100
	total := subtotal - discountAmount
	return PricingSnapshot{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Total:           total,
		DisplayDiscount: int64(math.Round(discountAmount)),
		DisplayTotal:    int64(math.Round(total)),
	}
}
