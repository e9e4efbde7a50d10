package quick_admis

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	QuickAdmis(ctx context.Context, id int64, req *models.QuickAdmisRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
