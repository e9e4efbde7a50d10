package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/dbmetrics"
	"github.com/itpmanager/ITP-SchedulingService/pkg/psqlbuilder"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

var workingHoursColumns = []string{
	"id",
	"day_of_week",
	"is_open",
	"open_time",
	"close_time",
	"break_start",
	"break_end",
	"slot_duration",
	"max_appointments",
	"created_at",
	"updated_at",
}

// Repository persistence for the weekly working hours template.
// One row per weekday, day_of_week is unique (0 = Sunday).
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday fetches the working hours row for one weekday.
func (r *Repository) GetByWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHoursColumns...).
		From("working_hours").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	wh, err := scanWorkingHours(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan working hours: %v", ErrScanRow, err)
	}

	return wh, nil
}

// GetAll fetches the full weekly template ordered Sunday to Saturday.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHoursColumns...).
		From("working_hours").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkingHours, 0, 7)
	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		result = append(result, wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert inserts or replaces the row for the weekday and returns the
// stored version. Used both by the staff update endpoint and by the
// startup seeding of the default weekly template.
func (r *Repository) Upsert(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(
			"day_of_week",
			"is_open",
			"open_time",
			"close_time",
			"break_start",
			"break_end",
			"slot_duration",
			"max_appointments",
		).
		Values(
			wh.DayOfWeek,
			wh.IsOpen,
			wh.OpenTime,
			wh.CloseTime,
			wh.BreakStart,
			wh.BreakEnd,
			wh.SlotDuration,
			wh.MaxAppointments,
		).
		Suffix(`ON CONFLICT (day_of_week) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			slot_duration = EXCLUDED.slot_duration,
			max_appointments = EXCLUDED.max_appointments,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&wh.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return wh, nil
}

// ExistsAny reports whether any working hours rows exist. Used once at
// startup to decide whether to seed the default template.
func (r *Repository) ExistsAny(ctx context.Context) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("working_hours").
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsAny - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAny - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingHours(row rowScanner) (*domain.WorkingHours, error) {
	var (
		wh         domain.WorkingHours
		breakStart types.TimeString
		breakEnd   types.TimeString
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err := row.Scan(
		&wh.ID,
		&wh.DayOfWeek,
		&wh.IsOpen,
		&wh.OpenTime,
		&wh.CloseTime,
		&breakStart,
		&breakEnd,
		&wh.SlotDuration,
		&wh.MaxAppointments,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL break columns scan to the zero TimeString
	if !breakStart.IsZero() && !breakEnd.IsZero() {
		wh.BreakStart = &breakStart
		wh.BreakEnd = &breakEnd
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}
