package domain

import "github.com/itpmanager/ITP-SchedulingService/pkg/types"

// DayUnavailableReason why a whole day has no bookable slots
type DayUnavailableReason string

const (
	ReasonPastDate  DayUnavailableReason = "past_date"
	ReasonClosedDay DayUnavailableReason = "closed_day"
	ReasonHoliday   DayUnavailableReason = "holiday"
)

// Slot one candidate start time within a working day, with its
// availability and occupancy reported for UI transparency.
type Slot struct {
	Time              types.TimeString
	IsBreak           bool
	Available         bool
	AppointmentsCount int
	MaxAppointments   int
}

// IsFull reports whether the slot capacity is exhausted.
func (s *Slot) IsFull() bool {
	return s.AppointmentsCount >= s.MaxAppointments
}
