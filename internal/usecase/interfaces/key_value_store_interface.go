package interfaces

import "context"

// IKeyValueStore is the persistent key-value storage behind snapshots and the
// auth session. Values are opaque byte blobs.
type IKeyValueStore interface {
	// Get returns found=false, with no error, when the key does not exist.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Put overwrites unconditionally.
	Put(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}
