package model

// Product is the storefront's read-only view of a catalog product as served
// by the upstream commerce API.
type Product struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Brand    *Brand    `json:"brand,omitempty"`
	Category *Category `json:"category,omitempty"`
	Images   []string  `json:"images"`
	Variants []Variant `json:"variants"`
}

// Variant is a purchasable SKU of a product with its own price and stock.
type Variant struct {
	ID            string   `json:"id"`
	Color         string   `json:"color"`
	Storage       string   `json:"storage"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Stock         int      `json:"stock"`
	Images        []string `json:"images"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FindVariant returns the variant with the given id, or nil.
func (p *Product) FindVariant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}
