package list_appointments

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
