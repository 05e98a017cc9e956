// Package storage provides durable backends for the application collection.
// A backend holds one value under one fixed key: the serialized array of
// application records. The store reads it once at startup and rewrites it
// in full after every mutation.
package storage

import (
	"context"
	"errors"
)

// Key is the fixed storage key for the application collection.
const Key = "hirelink_applications"

// ErrNotFound is returned by Load when nothing has been persisted yet.
var ErrNotFound = errors.New("storage: key not found")

// Backend persists the serialized application collection.
type Backend interface {
	// Load returns the last saved payload, or ErrNotFound if the key has
	// never been written.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored payload.
	Save(ctx context.Context, data []byte) error
}
