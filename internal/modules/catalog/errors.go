package catalog

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("hotel not found")
	ErrForbidden  = errors.New("not the hotel owner")
	ErrDuplicate  = errors.New("duplicate resource")
)
