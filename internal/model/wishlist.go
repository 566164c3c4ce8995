package model

// WishlistState is a set of product snapshots, unique by product id. There
// is no quantity or price aggregation on a wishlist.
type WishlistState struct {
	Items []Product `json:"items"`
}

// Contains reports whether the product id is in the wishlist.
func (s *WishlistState) Contains(productID string) bool {
	for _, p := range s.Items {
		if p.ID == productID {
			return true
		}
	}
	return false
}
