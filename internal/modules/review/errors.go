package review

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("review not found")
	ErrForbidden     = errors.New("not allowed")
	ErrAlreadyExists = errors.New("review already exists for this booking")
	ErrNoStay        = errors.New("no completed stay at this hotel")
)
