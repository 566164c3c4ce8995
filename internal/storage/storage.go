package storage

import "context"

// Store is the persistent key-value adapter shared by the cart, wishlist and
// auth repositories. Values are JSON-serialized on write and parsed on read.
//
// The contract deliberately has no error returns: a missing or unreachable
// backend, a serialization failure or a corrupt value all degrade to a no-op
// (Get reports false, mutations do nothing). Callers keep working from their
// in-memory state; the only consequence is that the state stops persisting.
// Backends log the swallowed errors so operators still see them.
type Store interface {
	// Get unmarshals the value under key into dest and reports whether a
	// usable value was found.
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Remove(ctx context.Context, key string)
	Clear(ctx context.Context)
}

// Noop is the degraded Store used when no backend is available. All reads
// miss and all writes vanish.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) bool { return false }
func (Noop) Set(context.Context, string, interface{})      {}
func (Noop) Remove(context.Context, string)                {}
func (Noop) Clear(context.Context)                         {}
