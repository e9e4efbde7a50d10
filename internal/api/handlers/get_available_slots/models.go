package get_available_slots

import (
	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	getSlots "github.com/itpmanager/ITP-SchedulingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model of one slot
type SlotResponse struct {
	StartTime         string `json:"startTime"` // "10:00"
	IsBreak           bool   `json:"isBreak"`
	Available         bool   `json:"available"`
	AppointmentsCount int    `json:"appointmentsCount"`
	MaxAppointments   int    `json:"maxAppointments"`
}

// WorkingHoursResponse the day's opening frame, present on open days only
type WorkingHoursResponse struct {
	Open       string  `json:"open"`  // "08:00"
	Close      string  `json:"close"` // "17:00"
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// DayResponse HTTP response model of one day's availability
type DayResponse struct {
	Date            string                `json:"date"` // "2026-03-15"
	IsAvailable     bool                  `json:"isAvailable"`
	Reason          *string               `json:"reason,omitempty"`
	HolidayName     *string               `json:"holidayName,omitempty"`
	WorkingHours    *WorkingHoursResponse `json:"workingHours,omitempty"`
	DurationMinutes int                   `json:"durationMinutes"`
	Slots           []SlotResponse        `json:"slots"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getSlots.Response) *DayResponse {
	day := &DayResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		IsAvailable:     resp.IsAvailable,
		HolidayName:     resp.HolidayName,
		DurationMinutes: resp.DurationMinutes,
		Slots:           make([]SlotResponse, len(resp.Slots)),
	}

	if resp.Reason != nil {
		reason := string(*resp.Reason)
		day.Reason = &reason
	}

	if wh := resp.WorkingHours; wh != nil {
		day.WorkingHours = &WorkingHoursResponse{
			Open:  wh.OpenTime.String(),
			Close: wh.CloseTime.String(),
		}
		if wh.BreakStart != nil {
			start := wh.BreakStart.String()
			day.WorkingHours.BreakStart = &start
		}
		if wh.BreakEnd != nil {
			end := wh.BreakEnd.String()
			day.WorkingHours.BreakEnd = &end
		}
	}

	for i, slot := range resp.Slots {
		day.Slots[i] = SlotResponse{
			StartTime:         slot.StartTime.String(),
			IsBreak:           slot.IsBreak,
			Available:         slot.Available,
			AppointmentsCount: slot.AppointmentsCount,
			MaxAppointments:   slot.MaxAppointments,
		}
	}

	return day
}
