package get_available_slots

import (
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

// Request query for the availability of one day
type Request struct {
	Date            time.Time           // requested day (time component ignored)
	ServiceType     *domain.ServiceType // optional, sets the default duration
	DurationMinutes *int                // optional override of the service duration
}

// Response availability of one day. When the whole day is unavailable
// Reason says why, Slots is empty and WorkingHours is nil.
type Response struct {
	Date            time.Time
	IsAvailable     bool
	Reason          *domain.DayUnavailableReason
	HolidayName     *string // set when Reason is holiday
	WorkingHours    *WorkingHoursInfo
	DurationMinutes int // duration the availability was computed for
	Slots           []Slot
}

// WorkingHoursInfo the day's schedule frame echoed alongside the grid
type WorkingHoursInfo struct {
	OpenTime   types.TimeString
	CloseTime  types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

func workingHoursInfo(wh *domain.WorkingHours) *WorkingHoursInfo {
	return &WorkingHoursInfo{
		OpenTime:   wh.OpenTime,
		CloseTime:  wh.CloseTime,
		BreakStart: wh.BreakStart,
		BreakEnd:   wh.BreakEnd,
	}
}

// Slot one candidate start time. Break and fully booked slots are included
// with Available=false so the UI can render the whole day grid.
type Slot struct {
	StartTime         types.TimeString
	IsBreak           bool
	Available         bool
	AppointmentsCount int
	MaxAppointments   int
}
