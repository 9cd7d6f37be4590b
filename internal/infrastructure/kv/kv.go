// Package kv provides the durable key-value persistence port used by the
// trash ledger, plus Redis and in-memory implementations.
package kv

import "context"

// Store is a minimal durable key-value store.
// Get reports whether the key was present; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}
