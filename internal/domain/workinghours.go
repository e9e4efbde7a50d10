package domain

import (
	"fmt"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

// WorkingHours per-weekday opening configuration for the station.
// One row exists for each weekday (0=Sunday .. 6=Saturday); rows are
// seeded at tenant onboarding and only ever updated, never deleted.
type WorkingHours struct {
	ID              int64
	DayOfWeek       int // 0=Sunday .. 6=Saturday
	IsOpen          bool
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	BreakStart      *types.TimeString
	BreakEnd        *types.TimeString
	SlotDuration    int // slot granularity in minutes
	MaxAppointments int // concurrent appointments allowed per slot start
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasBreak reports whether a break window is configured.
func (w *WorkingHours) HasBreak() bool {
	return w.BreakStart != nil && w.BreakEnd != nil
}

// Validate enforces the working-hours invariants:
// open < close when open, and open <= breakStart < breakEnd <= close
// when a break is set.
func (w *WorkingHours) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be in [0..6], got %d", ErrInvalidWorkingHours, w.DayOfWeek)
	}

	if !w.IsOpen {
		return nil
	}

	if err := w.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: openTime: %v", ErrInvalidWorkingHours, err)
	}
	if err := w.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closeTime: %v", ErrInvalidWorkingHours, err)
	}
	if !w.OpenTime.IsBefore(w.CloseTime) {
		return fmt.Errorf("%w: openTime %s must be before closeTime %s",
			ErrInvalidWorkingHours, w.OpenTime, w.CloseTime)
	}

	if w.SlotDuration < MinSlotDurationMinutes || w.SlotDuration > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDuration must be in [%d..%d] minutes, got %d",
			ErrInvalidWorkingHours, MinSlotDurationMinutes, MaxSlotDurationMinutes, w.SlotDuration)
	}
	if w.MaxAppointments < MinMaxAppointments || w.MaxAppointments > MaxMaxAppointments {
		return fmt.Errorf("%w: maxAppointments must be in [%d..%d], got %d",
			ErrInvalidWorkingHours, MinMaxAppointments, MaxMaxAppointments, w.MaxAppointments)
	}

	if (w.BreakStart == nil) != (w.BreakEnd == nil) {
		return fmt.Errorf("%w: breakStart and breakEnd must be set together", ErrInvalidWorkingHours)
	}
	if w.HasBreak() {
		if err := w.BreakStart.Validate(); err != nil {
			return fmt.Errorf("%w: breakStart: %v", ErrInvalidWorkingHours, err)
		}
		if err := w.BreakEnd.Validate(); err != nil {
			return fmt.Errorf("%w: breakEnd: %v", ErrInvalidWorkingHours, err)
		}
		if w.BreakStart.IsBefore(w.OpenTime) {
			return fmt.Errorf("%w: breakStart %s is before openTime %s",
				ErrInvalidWorkingHours, *w.BreakStart, w.OpenTime)
		}
		if !w.BreakStart.IsBefore(*w.BreakEnd) {
			return fmt.Errorf("%w: breakStart %s must be before breakEnd %s",
				ErrInvalidWorkingHours, *w.BreakStart, *w.BreakEnd)
		}
		if w.BreakEnd.IsAfter(w.CloseTime) {
			return fmt.Errorf("%w: breakEnd %s is after closeTime %s",
				ErrInvalidWorkingHours, *w.BreakEnd, w.CloseTime)
		}
	}

	return nil
}

// WeekdayIndex maps time.Weekday to the stored 0=Sunday convention.
func WeekdayIndex(t time.Time) int {
	return int(t.Weekday())
}

// DefaultWeeklySchedule returns the schedule seeded at tenant onboarding:
// Monday-Friday 08:00-17:00 with a 12:00-13:00 break, Saturday 09:00-13:00,
// Sunday closed. 30-minute slots, single inspection bay.
func DefaultWeeklySchedule() []*WorkingHours {
	week := make([]*WorkingHours, 0, 7)
	for day := 0; day <= 6; day++ {
		wh := &WorkingHours{
			DayOfWeek:       day,
			SlotDuration:    DefaultSlotDurationMinutes,
			MaxAppointments: DefaultMaxAppointments,
		}
		switch day {
		case 0: // Sunday
			wh.IsOpen = false
		case 6: // Saturday
			wh.IsOpen = true
			wh.OpenTime = "09:00"
			wh.CloseTime = "13:00"
		default:
			wh.IsOpen = true
			wh.OpenTime = "08:00"
			wh.CloseTime = "17:00"
			breakStart := types.TimeString("12:00")
			breakEnd := types.TimeString("13:00")
			wh.BreakStart = &breakStart
			wh.BreakEnd = &breakEnd
		}
		week = append(week, wh)
	}
	return week
}
