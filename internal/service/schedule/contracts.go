package schedule

import (
	"context"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
)

// ScheduleRepository repository contract for the weekly working hours
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.WorkingHours, error)
	GetByWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error)
	Upsert(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
	ExistsAny(ctx context.Context) (bool, error)
}

// HolidayRepository repository contract for the holiday registry
type HolidayRepository interface {
	GetAll(ctx context.Context) ([]*domain.Holiday, error)
	Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	BulkCreate(ctx context.Context, holidays []*domain.Holiday) (int, error)
	Delete(ctx context.Context, id int64) error
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
