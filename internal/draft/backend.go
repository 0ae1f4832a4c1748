// Package draft holds the local draft store: the client-side slot where
// in-progress resume edits persist between sessions. Every mutation is
// mirrored here before any remote save, so a failed network call never
// loses user data.
package draft

import "errors"

// ErrNoValue reports that the backend holds nothing under a key. Callers
// treat it as "start from defaults", not as a failure.
var ErrNoValue = errors.New("no stored value")

// Backend is the durable slot behind the store. Implementations must make
// Write atomic enough that a crash never leaves a truncated value.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}
