package assist

import "errors"

// ErrInvalidInput signals a missing or unusable request field.
var ErrInvalidInput = errors.New("invalid input")
