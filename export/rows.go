// Package export builds flat tabular rows from the catalog or the cart
// and hands them to a spreadsheet writer. Row values are strings or
// numbers only, so the row shape stays independent of the file format.
package export

import (
	"errors"
	"fmt"

	"github.com/melochey/storefront-api/models"
	"github.com/melochey/storefront-api/store"
)

// ErrEmptyCartExport is returned when a cart export is requested with no
// items in the cart. No rows are produced.
var ErrEmptyCartExport = errors.New("cart is empty, nothing to export")

// Row is one spreadsheet row. The first row of every export is a header.
type Row []interface{}

// CatalogRows flattens the full catalog into export rows, one per product
// in catalog order. Old price and discount cells are blank for products
// that are not on sale.
func CatalogRows(catalog *store.Catalog) []Row {
	rows := []Row{
		{"ID", "Name", "Category", "Price", "Old Price", "Discount %", "In Stock"},
	}
	for _, p := range catalog.Products() {
		oldPrice := interface{}("")
		discount := interface{}("")
		if p.OnSale() {
			oldPrice = p.OldPrice
			discount = p.Discount
		}
		stock := "no"
		if p.InStock {
			stock = "yes"
		}
		rows = append(rows, Row{p.ID, p.Name, catalog.CategoryName(p.Category), p.Price, oldPrice, discount, stock})
	}
	return rows
}

// CartRows flattens the cart and its pricing snapshot into export rows:
// one row per line in cart order, then a subtotal row, and a discount row
// plus a payable-total row when a discount is active. Exact values are
// written; display rounding is a UI concern.
func CartRows(items []models.CartItem, snap models.PricingSnapshot) ([]Row, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCartExport
	}

	rows := []Row{
		{"Name", "Unit Price", "Quantity", "Line Total"},
	}
	for _, item := range items {
		rows = append(rows, Row{item.Name, item.Price, item.Quantity, item.LineTotal()})
	}

	rows = append(rows, Row{"", "", "Subtotal:", snap.Subtotal})
	if snap.DiscountPercent > 0 {
		rows = append(rows,
			Row{"", "", fmt.Sprintf("Discount %d%%:", snap.DiscountPercent), -snap.DiscountAmount},
			Row{"", "", "Total:", snap.Total},
		)
	}
	return rows, nil
}
