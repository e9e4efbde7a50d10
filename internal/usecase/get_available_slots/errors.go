package get_available_slots

import "errors"

var (
	// ErrInvalidInput returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrScheduleNotConfigured returned when no working hours row exists
	// for the requested weekday
	ErrScheduleNotConfigured = errors.New("working hours not configured for this weekday")

	// ErrInternal returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
