package schedule

import "errors"

var (
	// ErrWorkingHoursNotFound returned when no row exists for the weekday
	ErrWorkingHoursNotFound = errors.New("working hours not found")

	// ErrHolidayNotFound returned when the holiday does not exist
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrInvalidInput returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
