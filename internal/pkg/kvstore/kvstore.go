package kvstore

import (
	"context"
	"errors"
)

// Store is the device-style key-value persistence every repository writes through.
// Values are opaque strings, usually JSON blobs. Set is atomic per key.
// SetIfAbsent writes only when the key does not exist and reports whether it did.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetIfAbsent(ctx context.Context, key, value string) (bool, error)
	Remove(ctx context.Context, key string) error
}

// ErrStoreClosed is returned by the memory driver after Close.
var ErrStoreClosed = errors.New("kvstore: store closed")
