package working_hours

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeeklySchedule(ctx context.Context) (*models.WeeklyScheduleResponse, error)
	GetWorkingHours(ctx context.Context, dayOfWeek int) (*models.WorkingHoursResponse, error)
	UpdateWorkingHours(ctx context.Context, dayOfWeek int, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
