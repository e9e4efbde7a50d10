package create_appointment

import (
	"context"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/internal/integrations/clientservice"
	"github.com/itpmanager/ITP-SchedulingService/internal/integrations/notifyservice"
)

// AppointmentRepository repository contract for booking appointments
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

// ScheduleRepository repository contract for the weekly working hours
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error)
}

// HolidayRepository repository contract for the holiday registry
type HolidayRepository interface {
	GetRelevantForYear(ctx context.Context, year int) ([]*domain.Holiday, error)
}

// ClientServiceClient contract for the client registry lookup
type ClientServiceClient interface {
	FindByPhoneWithGracefulDegradation(ctx context.Context, phone string) (*clientservice.RegisteredClient, error)
}

// NotifyServiceClient contract for notification delivery
type NotifyServiceClient interface {
	SendEventAsync(event notifyservice.AppointmentEvent)
}

// TransactionManager transaction contract
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
