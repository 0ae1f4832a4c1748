package apiclient

import "errors"

// Typed errors for the status classes the service answers with. Transport
// failures are returned wrapped, not mapped onto these.
var (
	ErrNotFound   = errors.New("resume not found")
	ErrBadRequest = errors.New("bad request")
	ErrServer     = errors.New("server error")
)
