package transition_appointment

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Confirm(ctx context.Context, id int64) (*models.AppointmentResponse, error)
	StartInspection(ctx context.Context, id int64) (*models.AppointmentResponse, error)
	Complete(ctx context.Context, id int64) (*models.AppointmentResponse, error)
	NoShow(ctx context.Context, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
