package schedule

import "errors"

var (
	// ErrWorkingHoursNotFound returned when no row exists for the weekday
	ErrWorkingHoursNotFound = errors.New("schedule.repository: working hours not found")

	// ErrBuildQuery returned when building the SQL query fails
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery returned when executing the SQL query fails
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow returned when scanning a result row fails
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
