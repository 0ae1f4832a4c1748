package resumes

import "errors"

var (
	// ErrNotFound signals the requested resume does not exist for the user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput signals a malformed or unusable request.
	ErrInvalidInput = errors.New("invalid input")
)
