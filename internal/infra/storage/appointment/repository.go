package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/dbmetrics"
	"github.com/itpmanager/ITP-SchedulingService/pkg/psqlbuilder"
)

// appointmentColumns column list shared by every SELECT.
var appointmentColumns = []string{
	"id",
	"confirmation_code",
	"client_id",
	"client_name",
	"client_phone",
	"client_email",
	"vehicle_plate",
	"vehicle_make",
	"vehicle_model",
	"vehicle_year",
	"vehicle_category",
	"appointment_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"service_type",
	"service_notes",
	"is_rar_blocked",
	"rar_blocked_at",
	"rar_notes",
	"itp_result",
	"itp_notes",
	"status",
	"confirmed_at",
	"cancelled_at",
	"cancel_reason",
	"reminder_sent",
	"created_at",
	"updated_at",
}

// Repository persistence for appointments.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment and fills in the generated id and
// timestamps. Returns ErrDuplicateCode when the confirmation code is
// already taken, so the caller can regenerate and retry.
//
// When called inside a transaction (context carries one), the insert joins
// it; create-appointment relies on this together with the FOR UPDATE day
// read in GetWithFilter to keep slot capacity race-free.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"confirmation_code",
			"client_id",
			"client_name",
			"client_phone",
			"client_email",
			"vehicle_plate",
			"vehicle_make",
			"vehicle_model",
			"vehicle_year",
			"vehicle_category",
			"appointment_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"service_type",
			"service_notes",
			"status",
		).
		Values(
			appt.ConfirmationCode,
			appt.ClientID,
			appt.ClientName,
			appt.ClientPhone,
			appt.ClientEmail,
			appt.VehiclePlate,
			appt.VehicleMake,
			appt.VehicleModel,
			appt.VehicleYear,
			appt.VehicleCategory,
			appt.AppointmentDate,
			appt.StartTime,
			appt.EndTime,
			appt.DurationMinutes,
			appt.ServiceType,
			appt.ServiceNotes,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: code=%s", ErrDuplicateCode, appt.ConfirmationCode)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID fetches an appointment by its id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByConfirmationCode fetches an appointment by its confirmation code.
// Used by the public self-service lookup, where the code acts as the
// capability token.
func (r *Repository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"confirmation_code": code}, "GetByConfirmationCode")
}

// GetByPhone fetches all appointments booked under the given phone number,
// newest first.
func (r *Repository) GetByPhone(ctx context.Context, phone string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"client_phone": phone}).
		OrderBy("appointment_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetWithFilter fetches appointments by period/status filter.
//
// For a single-date filter inside a transaction the day's rows are locked
// with FOR UPDATE: create-appointment reads the day this way before
// counting slot load, so two concurrent bookings for the same slot
// serialize on the row locks and the second one sees the first.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}
	if filter.ClientPhone != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_phone": *filter.ClientPhone})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	singleDay := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDay {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date ASC, start_time ASC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDay {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CodeExists reports whether a confirmation code is already assigned.
func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("appointments").
		Where(squirrel.Eq{"confirmation_code": code}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CodeExists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: CodeExists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Confirm sets status CONFIRMED and stamps confirmed_at.
func (r *Repository) Confirm(ctx context.Context, id int64, confirmedAt time.Time) error {
	return r.exec(ctx, "Confirm", psqlbuilder.Update("appointments").
		Set("status", domain.StatusConfirmed).
		Set("confirmed_at", confirmedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// Cancel sets status CANCELLED with the cancellation reason.
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string, cancelledAt time.Time) error {
	return r.exec(ctx, "Cancel", psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancel_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// UpdateStatus sets the status only. Used for the transitions that carry
// no extra fields (start, complete, no-show).
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return r.exec(ctx, "UpdateStatus", psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// MarkRarBlocked sets status RAR_BLOCKED with the regulatory hold fields.
func (r *Repository) MarkRarBlocked(ctx context.Context, id int64, notes *string, blockedAt time.Time) error {
	return r.exec(ctx, "MarkRarBlocked", psqlbuilder.Update("appointments").
		Set("status", domain.StatusRarBlocked).
		Set("is_rar_blocked", true).
		Set("rar_blocked_at", blockedAt).
		Set("rar_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// SetItpResult records the inspection outcome without touching the status.
func (r *Repository) SetItpResult(ctx context.Context, id int64, result domain.ItpResult, notes *string) error {
	return r.exec(ctx, "SetItpResult", psqlbuilder.Update("appointments").
		Set("itp_result", result).
		Set("itp_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// CompleteWithResult atomically records the outcome and sets status
// COMPLETED in a single statement (quick-admis).
func (r *Repository) CompleteWithResult(ctx context.Context, id int64, result domain.ItpResult, notes *string) error {
	return r.exec(ctx, "CompleteWithResult", psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("itp_result", result).
		Set("itp_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// UpdateFields applies a partial non-status correction.
func (r *Repository) UpdateFields(ctx context.Context, id int64, upd domain.AppointmentUpdate) error {
	builder := psqlbuilder.Update("appointments").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.ClientID != nil {
		builder = builder.Set("client_id", *upd.ClientID)
	}
	if upd.ClientName != nil {
		builder = builder.Set("client_name", *upd.ClientName)
	}
	if upd.ClientPhone != nil {
		builder = builder.Set("client_phone", *upd.ClientPhone)
	}
	if upd.ClientEmail != nil {
		builder = builder.Set("client_email", *upd.ClientEmail)
	}
	if upd.VehiclePlate != nil {
		builder = builder.Set("vehicle_plate", *upd.VehiclePlate)
	}
	if upd.VehicleMake != nil {
		builder = builder.Set("vehicle_make", *upd.VehicleMake)
	}
	if upd.VehicleModel != nil {
		builder = builder.Set("vehicle_model", *upd.VehicleModel)
	}
	if upd.VehicleYear != nil {
		builder = builder.Set("vehicle_year", *upd.VehicleYear)
	}
	if upd.VehicleCategory != nil {
		builder = builder.Set("vehicle_category", *upd.VehicleCategory)
	}
	if upd.AppointmentDate != nil {
		builder = builder.Set("appointment_date", *upd.AppointmentDate)
	}
	if upd.StartTime != nil {
		builder = builder.Set("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		builder = builder.Set("end_time", *upd.EndTime)
	}
	if upd.DurationMinutes != nil {
		builder = builder.Set("duration_minutes", *upd.DurationMinutes)
	}
	if upd.ServiceType != nil {
		builder = builder.Set("service_type", *upd.ServiceType)
	}
	if upd.ServiceNotes != nil {
		builder = builder.Set("service_notes", *upd.ServiceNotes)
	}

	return r.exec(ctx, "UpdateFields", builder)
}

// Delete removes the appointment row. Administrative correction only;
// the lifecycle keeps history through CANCELLED/NO_SHOW instead.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
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
		return ErrAppointmentNotFound
	}

	return nil
}

// exec runs an UPDATE builder and maps zero affected rows to not-found.
func (r *Repository) exec(ctx context.Context, op string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
	}

	return appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// rowScanner lets scanAppointment work with *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt            domain.Appointment
		vehicleCategory string
		serviceType     string
		status          string
		itpResult       sql.NullString
		confirmedAt     sql.NullTime
		cancelledAt     sql.NullTime
		rarBlockedAt    sql.NullTime
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.ConfirmationCode,
		&appt.ClientID,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.ClientEmail,
		&appt.VehiclePlate,
		&appt.VehicleMake,
		&appt.VehicleModel,
		&appt.VehicleYear,
		&vehicleCategory,
		&appt.AppointmentDate,
		&appt.StartTime,
		&appt.EndTime,
		&appt.DurationMinutes,
		&serviceType,
		&appt.ServiceNotes,
		&appt.IsRarBlocked,
		&rarBlockedAt,
		&appt.RarNotes,
		&itpResult,
		&appt.ItpNotes,
		&status,
		&confirmedAt,
		&cancelledAt,
		&appt.CancelReason,
		&appt.ReminderSent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.VehicleCategory = domain.VehicleCategory(vehicleCategory)
	appt.ServiceType = domain.ServiceType(serviceType)
	appt.Status = domain.AppointmentStatus(status)

	if itpResult.Valid {
		result := domain.ItpResult(itpResult.String)
		appt.ItpResult = &result
	}
	if rarBlockedAt.Valid {
		appt.RarBlockedAt = &rarBlockedAt.Time
	}
	if confirmedAt.Valid {
		appt.ConfirmedAt = &confirmedAt.Time
	}
	if cancelledAt.Valid {
		appt.CancelledAt = &cancelledAt.Time
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}
