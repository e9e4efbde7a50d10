package appointment

import "errors"

var (
	// ErrAppointmentNotFound returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDuplicateCode returned when the confirmation code collides with
	// an existing appointment (unique constraint violation)
	ErrDuplicateCode = errors.New("appointment.repository: duplicate confirmation code")

	// ErrBuildQuery returned when building the SQL query fails
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery returned when executing the SQL query fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow returned when scanning a result row fails
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
