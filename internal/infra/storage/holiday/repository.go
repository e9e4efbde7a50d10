package holiday

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/dbmetrics"
	"github.com/itpmanager/ITP-SchedulingService/pkg/psqlbuilder"
)

var holidayColumns = []string{
	"id",
	"name",
	"date",
	"is_recurring",
	"is_orthodox",
	"created_at",
	"updated_at",
}

// Repository persistence for the holiday registry.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a holiday and fills in the generated id and timestamps.
func (r *Repository) Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns("name", "date", "is_recurring", "is_orthodox").
		Values(h.Name, h.Date, h.IsRecurring, h.IsOrthodox).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return h, nil
}

// BulkCreate inserts a batch of holidays, skipping (name, date) pairs that
// already exist. Returns the number of rows actually inserted. Used by the
// yearly Romanian national holiday seeding, which must be re-runnable.
func (r *Repository) BulkCreate(ctx context.Context, holidays []*domain.Holiday) (int, error) {
	if len(holidays) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("holidays").
		Columns("name", "date", "is_recurring", "is_orthodox")

	for _, h := range holidays {
		insertBuilder = insertBuilder.Values(h.Name, h.Date, h.IsRecurring, h.IsOrthodox)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (name, date) DO NOTHING").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - get rows affected: %v", ErrExecQuery, err)
	}

	return int(inserted), nil
}

// GetAll fetches every holiday, recurring ones first, then by date.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Holiday, error) {
	return r.list(ctx, psqlbuilder.Select(holidayColumns...).
		From("holidays").
		OrderBy("is_recurring DESC, date ASC"), "GetAll")
}

// GetRelevantForYear fetches the holidays that can block dates in the given
// year: every recurring holiday plus the one-off holidays dated within it.
func (r *Repository) GetRelevantForYear(ctx context.Context, year int) ([]*domain.Holiday, error) {
	return r.list(ctx, psqlbuilder.Select(holidayColumns...).
		From("holidays").
		Where(squirrel.Or{
			squirrel.Eq{"is_recurring": true},
			squirrel.Expr("EXTRACT(YEAR FROM date) = ?", year),
		}).
		OrderBy("date ASC"), "GetRelevantForYear")
}

// Delete removes a holiday by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holidays").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrHolidayNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		var (
			h         domain.Holiday
			createdAt sql.NullTime
			updatedAt sql.NullTime
		)
		err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.Date,
			&h.IsRecurring,
			&h.IsOrthodox,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time
		holidays = append(holidays, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return holidays, nil
}
