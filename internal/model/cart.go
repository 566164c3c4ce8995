package model

// CartItem is one line in a cart, keyed by (ProductID, VariantID). Product
// and Variant are denormalized snapshots taken at insertion time so the cart
// can be displayed without a catalog refetch.
type CartItem struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
	Variant   Variant `json:"variant"`
}

// CartState holds the line items in insertion order plus the derived
// aggregates. TotalItems and TotalPrice are never set directly; they are
// recomputed from Items after every mutation.
type CartState struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

// Recompute refreshes the aggregates from the item list.
func (s *CartState) Recompute() {
	total := 0
	price := 0.0
	for _, item := range s.Items {
		total += item.Quantity
		price += item.Variant.Price * float64(item.Quantity)
	}
	s.TotalItems = total
	s.TotalPrice = price
}

// Find returns the index of the item with the given composite key, or -1.
func (s *CartState) Find(productID, variantID string) int {
	for i, item := range s.Items {
		if item.ProductID == productID && item.VariantID == variantID {
			return i
		}
	}
	return -1
}
