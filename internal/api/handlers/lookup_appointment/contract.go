package lookup_appointment

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByConfirmationCode(ctx context.Context, code string) (*models.AppointmentResponse, error)
	GetByPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
