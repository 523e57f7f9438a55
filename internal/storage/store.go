// Package storage implements the persistent key-value store backing the
// session manager. Values are opaque byte strings; (de)serialization is
// the caller's responsibility.
package storage

import "context"

// Store is the durable key-value contract.
//
// Get returns (nil, nil) when the key is absent. Each call is atomic with
// respect to other calls on the same key; last writer wins. There are no
// cross-key transactions outside Update.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// Update runs fn against a transactional view of the store and
	// commits its writes atomically, or rolls them back if fn errors.
	Update(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
