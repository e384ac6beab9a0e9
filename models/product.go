package models

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "all"

type Product struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Price    float64 `json:"price" yaml:"price"`
	OldPrice float64 `json:"old_price,omitempty" yaml:"old_price"` // pre-discount price, 0 when not on sale
	Discount int     `json:"discount,omitempty" yaml:"discount"`   // percent off, 0 when not on sale
	Image    string  `json:"image" yaml:"image"`
	InStock  bool    `json:"in_stock" yaml:"in_stock"`
}

// OnSale reports whether the product carries a catalog-level discount.
func (p Product) OnSale() bool {
	return p.Discount > 0
}
