package models

import (
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
)

// CalendarResponse one month of day summaries for the staff calendar
type CalendarResponse struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []DayData `json:"days"`
}

// DayData aggregated occupancy of one calendar day
type DayData struct {
	Date        string `json:"date"` // "2026-03-15"
	DayOfWeek   int    `json:"dayOfWeek"`
	IsOpen      bool   `json:"isOpen"`
	HolidayName string `json:"holidayName,omitempty"`

	TotalAppointments int            `json:"totalAppointments"`
	StatusCounts      map[string]int `json:"statusCounts"`

	Appointments []AppointmentSummary `json:"appointments"`
}

// AppointmentSummary the short form rendered inside a calendar cell
type AppointmentSummary struct {
	ID           int64  `json:"id"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	ClientName   string `json:"clientName"`
	VehiclePlate string `json:"vehiclePlate"`
	ServiceType  string `json:"serviceType"`
	Status       string `json:"status"`
	StatusColor  string `json:"statusColor"`
}

// FromDomainAppointmentSummary converts the domain model into the cell DTO
func FromDomainAppointmentSummary(a *domain.Appointment) AppointmentSummary {
	return AppointmentSummary{
		ID:           a.ID,
		StartTime:    a.StartTime.String(),
		EndTime:      a.EndTime.String(),
		ClientName:   a.ClientName,
		VehiclePlate: a.VehiclePlate,
		ServiceType:  string(a.ServiceType),
		Status:       string(a.Status),
		StatusColor:  a.Status.Color(),
	}
}

// MonthBounds returns the first and last day of the month
func MonthBounds(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
