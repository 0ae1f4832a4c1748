package object

import (
	"context"
	"io"
)

// Store is the contract for persisting export artifacts.
// Keys are slash-separated relative paths scoped by the caller; saving to an
// existing key replaces the previous object.
type Store interface {
	Save(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
