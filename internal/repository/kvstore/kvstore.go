// Package kvstore provides the persistence backend for farm collections: a
// minimal get/set/delete key-value contract with in-memory, file and MongoDB
// implementations. Values are opaque byte slices; callers decide the encoding.
package kvstore

import "context"

// Store is the key-value contract the record store persists through.
type Store interface {
	// Get returns the value stored under key. The boolean reports whether
	// the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
