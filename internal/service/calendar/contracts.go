package calendar

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
)

// AppointmentRepository repository contract for reading month occupancy
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository repository contract for the weekly working hours
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.WorkingHours, error)
}

// HolidayRepository repository contract for the holiday registry
type HolidayRepository interface {
	GetRelevantForYear(ctx context.Context, year int) ([]*domain.Holiday, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
