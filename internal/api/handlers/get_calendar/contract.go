package get_calendar

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/service/calendar/models"
)

type CalendarService interface {
	GetMonth(ctx context.Context, year, month int) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
