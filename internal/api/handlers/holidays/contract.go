package holidays

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListHolidays(ctx context.Context) (*models.HolidayListResponse, error)
	CreateHoliday(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id int64) error
	SeedRomanianHolidays(ctx context.Context, year int) (*models.SeedHolidaysResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
