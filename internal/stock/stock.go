package stock

import "context"

// Reader reports the live stock level for a variant when one is known.
// Cart validation prefers this over the variant snapshot captured at
// insertion time; a miss means the snapshot is the best information we have.
type Reader interface {
	Stock(ctx context.Context, productID, variantID string) (int, bool)
}

// Writer is the listener-facing side of the stock cache.
type Writer interface {
	SetStock(ctx context.Context, productID, variantID string, stock int) error
}
