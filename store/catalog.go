package store

import (
	"fmt"
	"strings"

	"github.com/melochey/storefront-api/models"
)

// Catalog is the immutable product and category reference data. It is
// built once at startup and only ever read afterwards, so it is safe to
// share across sessions without locking.
type Catalog struct {
	products   []models.Product
	byID       map[int]models.Product
	categories []models.Category
	names      map[string]string
}

// NewCatalog validates the reference data and builds the lookup tables.
func NewCatalog(products []models.Product, categories []models.Category) (*Catalog, error) {
	c := &Catalog{
		products:   products,
		byID:       make(map[int]models.Product, len(products)),
		categories: categories,
		names:      make(map[string]string, len(categories)),
	}

	for _, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category %q has an empty id", cat.Name)
		}
		if _, dup := c.names[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		c.names[cat.ID] = cat.Name
	}

	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has a negative price", p.ID)
		}
		if p.OnSale() && p.OldPrice <= p.Price {
			return nil, fmt.Errorf("product %d is discounted but old price %.2f is not above price %.2f", p.ID, p.OldPrice, p.Price)
		}
		if _, ok := c.names[p.Category]; !ok {
			return nil, fmt.Errorf("product %d references unknown category %q", p.ID, p.Category)
		}
		c.byID[p.ID] = p
	}

	return c, nil
}

// Products returns the full catalog in its defined order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product looks up a single product by id.
func (c *Catalog) Product(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the fixed category list, including the "all" tab.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryName resolves a category key to its display name, falling back
// to the key itself for unknown keys.
func (c *Catalog) CategoryName(id string) string {
	if name, ok := c.names[id]; ok {
		return name
	}
	return id
}

// Filter returns the products whose name contains query (case-insensitive)
// and whose category matches categoryID. An empty query matches every
// name; models.CategoryAll matches every category. Catalog order is
// preserved, and no match yields an empty, non-nil slice so callers can
// render an explicit "no results" state.
func (c *Catalog) Filter(query, categoryID string) []models.Product {
	needle := strings.ToLower(query)
	matched := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if categoryID != models.CategoryAll && categoryID != "" && p.Category != categoryID {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
