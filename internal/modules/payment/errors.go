package payment

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("booking not found")
	ErrForbidden    = errors.New("not allowed for this booking")
	ErrBadStatus    = errors.New("booking status does not allow this payment operation")
	ErrNothingToRefund = errors.New("no completed payments to refund")
)
