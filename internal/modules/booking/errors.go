package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrForbidden         = errors.New("not allowed for this booking")
	ErrNotAvailable      = errors.New("room not available for requested dates")
	ErrCannotCancel      = errors.New("booking can no longer be cancelled")
	ErrInvalidTransition = errors.New("invalid status transition")
)
