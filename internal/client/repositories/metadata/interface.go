// Package metadata is the durable key/value store of the client. The
// session record lives here under a fixed key.
package metadata

import (
	"context"
)

// Repository is a byte-valued key/value store. Get returns (nil, nil) when
// the key is absent; Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
