package get_available_slots

import (
	"context"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
)

// AppointmentRepository repository contract for reading day occupancy
type AppointmentRepository interface {
	// GetWithFilter fetches appointments matching the period filter
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository repository contract for the weekly working hours
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error)
}

// HolidayRepository repository contract for the holiday registry
type HolidayRepository interface {
	GetRelevantForYear(ctx context.Context, year int) ([]*domain.Holiday, error)
}

// TimeProvider clock contract (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
