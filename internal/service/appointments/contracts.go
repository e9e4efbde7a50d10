package appointments

import (
	"context"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/internal/integrations/notifyservice"
)

// AppointmentRepository repository contract for the appointment lifecycle
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Appointment, error)
	GetByPhone(ctx context.Context, phone string) ([]*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Confirm(ctx context.Context, id int64, confirmedAt time.Time) error
	Cancel(ctx context.Context, id int64, reason *string, cancelledAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	MarkRarBlocked(ctx context.Context, id int64, notes *string, blockedAt time.Time) error
	SetItpResult(ctx context.Context, id int64, result domain.ItpResult, notes *string) error
	CompleteWithResult(ctx context.Context, id int64, result domain.ItpResult, notes *string) error
	UpdateFields(ctx context.Context, id int64, upd domain.AppointmentUpdate) error
	Delete(ctx context.Context, id int64) error
}

// NotifyServiceClient contract for notification delivery
type NotifyServiceClient interface {
	SendEventAsync(event notifyservice.AppointmentEvent)
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
