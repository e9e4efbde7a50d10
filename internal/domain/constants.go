package domain

import "errors"

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxAppointments     = 1
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinMaxAppointments     = 1
	MaxMaxAppointments     = 20
	MaxNotesLength         = 500
	MaxCancelReasonLength  = 500

	// ConfirmationCodeLength length of the human-shareable booking code
	ConfirmationCodeLength = 6
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses statuses that no longer occupy slot capacity.
// Excluded when counting slot load.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// Domain validation sentinels
var (
	// ErrInvalidWorkingHours returned when a working-hours row violates
	// the open/close/break invariants
	ErrInvalidWorkingHours = errors.New("domain: invalid working hours")

	// ErrInvalidHoliday returned when a holiday record is malformed
	ErrInvalidHoliday = errors.New("domain: invalid holiday")
)
