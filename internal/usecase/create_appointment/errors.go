package create_appointment

import "errors"

var (
	// ErrInvalidInput returned on malformed request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate returned when the date lies in the past
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrStationClosed returned when the station is closed on that weekday
	ErrStationClosed = errors.New("create_appointment: station is closed on this date")

	// ErrHolidayDate returned when the date is blocked by a holiday
	ErrHolidayDate = errors.New("create_appointment: date falls on a holiday")

	// ErrScheduleNotConfigured returned when no working hours row exists
	// for the requested weekday
	ErrScheduleNotConfigured = errors.New("create_appointment: working hours not configured for this weekday")

	// ErrInvalidTimeSlot returned when the start time is off the slot grid,
	// outside working hours, or the inspection would overlap the break
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook returned for a same-day slot that already started
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotNotAvailable returned when the slot capacity is exhausted
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrCodeGeneration returned when a unique confirmation code could not
	// be produced after the retry budget
	ErrCodeGeneration = errors.New("create_appointment: failed to generate confirmation code")

	// ErrInternal returned on internal usecase errors
	ErrInternal = errors.New("create_appointment: internal error")
)
