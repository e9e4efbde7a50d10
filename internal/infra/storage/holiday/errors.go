package holiday

import "errors"

var (
	// ErrHolidayNotFound returned when the holiday does not exist
	ErrHolidayNotFound = errors.New("holiday.repository: holiday not found")

	// ErrBuildQuery returned when building the SQL query fails
	ErrBuildQuery = errors.New("holiday.repository: failed to build query")

	// ErrExecQuery returned when executing the SQL query fails
	ErrExecQuery = errors.New("holiday.repository: failed to execute query")

	// ErrScanRow returned when scanning a result row fails
	ErrScanRow = errors.New("holiday.repository: failed to scan row")
)
