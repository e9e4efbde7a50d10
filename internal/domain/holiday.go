package domain

import (
	"fmt"
	"time"
)

// Holiday a fully blocked calendar date. Recurring holidays apply every
// year on the same month and day; non-recurring ones only on the exact date.
type Holiday struct {
	ID          int64
	Name        string
	Date        time.Time // calendar date, time component ignored
	IsRecurring bool
	IsOrthodox  bool // religiously sourced holiday, informational
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks required holiday fields.
func (h *Holiday) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidHoliday)
	}
	if h.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidHoliday)
	}
	return nil
}

// Matches reports whether this holiday blocks the given date: exact match
// for one-off holidays, month+day match for recurring ones.
func (h *Holiday) Matches(date time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() &&
		h.Date.Month() == date.Month() &&
		h.Date.Day() == date.Day()
}

// IsBlockedDate reports whether any holiday in the list blocks the date.
func IsBlockedDate(holidays []*Holiday, date time.Time) bool {
	for _, h := range holidays {
		if h.Matches(date) {
			return true
		}
	}
	return false
}
