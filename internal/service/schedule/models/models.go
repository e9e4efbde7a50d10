package models

import (
	"errors"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

var (
	// ErrInvalidDate returned for a malformed date string
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Request models

// UpdateWorkingHoursRequest replaces the template of one weekday
type UpdateWorkingHoursRequest struct {
	IsOpen          bool    `json:"isOpen"`
	OpenTime        string  `json:"openTime"`  // "08:00"
	CloseTime       string  `json:"closeTime"` // "17:00"
	BreakStart      *string `json:"breakStart,omitempty"`
	BreakEnd        *string `json:"breakEnd,omitempty"`
	SlotDuration    int     `json:"slotDuration"`
	MaxAppointments int     `json:"maxAppointments"`
}

// ToDomain converts the request into the domain model for the weekday
func (r *UpdateWorkingHoursRequest) ToDomain(dayOfWeek int) (*domain.WorkingHours, error) {
	wh := &domain.WorkingHours{
		DayOfWeek:       dayOfWeek,
		IsOpen:          r.IsOpen,
		OpenTime:        types.TimeString(r.OpenTime),
		CloseTime:       types.TimeString(r.CloseTime),
		SlotDuration:    r.SlotDuration,
		MaxAppointments: r.MaxAppointments,
	}

	if r.BreakStart != nil && r.BreakEnd != nil {
		breakStart, err := types.NewTimeStringFromString(*r.BreakStart)
		if err != nil {
			return nil, err
		}
		breakEnd, err := types.NewTimeStringFromString(*r.BreakEnd)
		if err != nil {
			return nil, err
		}
		wh.BreakStart = &breakStart
		wh.BreakEnd = &breakEnd
	}

	if err := wh.Validate(); err != nil {
		return nil, err
	}

	return wh, nil
}

// CreateHolidayRequest adds one holiday to the registry
type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"` // YYYY-MM-DD
	IsRecurring bool   `json:"isRecurring"`
	IsOrthodox  bool   `json:"isOrthodox"`
}

// ToDomain converts the request into the domain model
func (r *CreateHolidayRequest) ToDomain() (*domain.Holiday, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	h := &domain.Holiday{
		Name:        r.Name,
		Date:        date,
		IsRecurring: r.IsRecurring,
		IsOrthodox:  r.IsOrthodox,
	}

	if err := h.Validate(); err != nil {
		return nil, err
	}

	return h, nil
}

// Response models

// WorkingHoursResponse the template of one weekday
type WorkingHoursResponse struct {
	DayOfWeek       int     `json:"dayOfWeek"` // 0 = Sunday
	IsOpen          bool    `json:"isOpen"`
	OpenTime        string  `json:"openTime"`
	CloseTime       string  `json:"closeTime"`
	BreakStart      *string `json:"breakStart,omitempty"`
	BreakEnd        *string `json:"breakEnd,omitempty"`
	SlotDuration    int     `json:"slotDuration"`
	MaxAppointments int     `json:"maxAppointments"`
}

// WeeklyScheduleResponse the full weekly template
type WeeklyScheduleResponse struct {
	Days []WorkingHoursResponse `json:"days"`
}

// HolidayResponse one holiday registry entry
type HolidayResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	IsRecurring bool   `json:"isRecurring"`
	IsOrthodox  bool   `json:"isOrthodox"`
}

// HolidayListResponse the holiday registry
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// SeedHolidaysResponse outcome of the yearly national holiday seeding
type SeedHolidaysResponse struct {
	Year     int `json:"year"`
	Inserted int `json:"inserted"`
}

// Conversion helpers

// FromDomainWorkingHours converts the domain model into the DTO
func FromDomainWorkingHours(wh *domain.WorkingHours) WorkingHoursResponse {
	resp := WorkingHoursResponse{
		DayOfWeek:       wh.DayOfWeek,
		IsOpen:          wh.IsOpen,
		OpenTime:        wh.OpenTime.String(),
		CloseTime:       wh.CloseTime.String(),
		SlotDuration:    wh.SlotDuration,
		MaxAppointments: wh.MaxAppointments,
	}

	if wh.HasBreak() {
		breakStart := wh.BreakStart.String()
		breakEnd := wh.BreakEnd.String()
		resp.BreakStart = &breakStart
		resp.BreakEnd = &breakEnd
	}

	return resp
}

// FromDomainWeeklySchedule converts the weekly template into the DTO
func FromDomainWeeklySchedule(week []*domain.WorkingHours) *WeeklyScheduleResponse {
	resp := &WeeklyScheduleResponse{
		Days: make([]WorkingHoursResponse, len(week)),
	}
	for i, wh := range week {
		resp.Days[i] = FromDomainWorkingHours(wh)
	}
	return resp
}

// FromDomainHoliday converts the domain model into the DTO
func FromDomainHoliday(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format(domain.DateFormat),
		IsRecurring: h.IsRecurring,
		IsOrthodox:  h.IsOrthodox,
	}
}

// FromDomainHolidayList converts a list of domain models into the DTO
func FromDomainHolidayList(holidays []*domain.Holiday) *HolidayListResponse {
	resp := &HolidayListResponse{
		Holidays: make([]HolidayResponse, len(holidays)),
	}
	for i, h := range holidays {
		resp.Holidays[i] = FromDomainHoliday(h)
	}
	return resp
}
