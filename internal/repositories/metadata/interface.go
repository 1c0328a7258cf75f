// Package metadata stores small key/value facts about the depot database,
// such as when each collection was last written.
package metadata

import "context"

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
