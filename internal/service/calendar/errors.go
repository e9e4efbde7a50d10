package calendar

import "errors"

var (
	// ErrInvalidInput returned for an out-of-range year or month
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
