package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	appointmentRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/schedule"
	clientClient "github.com/itpmanager/ITP-SchedulingService/internal/integrations/clientservice"
	"github.com/itpmanager/ITP-SchedulingService/internal/integrations/notifyservice"
	"github.com/itpmanager/ITP-SchedulingService/pkg/ptr"
)

// Number of attempts to find a free confirmation code before giving up.
// With a 32-character alphabet and 6 positions collisions are rare, the
// retries only matter once the table holds millions of rows.
const codeGenerationAttempts = 5

// UseCase books an appointment. The capacity check and the insert run in
// one serializable transaction with the day's rows locked, so concurrent
// bookings of the last free place cannot both succeed.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	holidayRepo     HolidayRepository
	clientClient    ClientServiceClient
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	holidayRepo HolidayRepository,
	clientClient ClientServiceClient,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		holidayRepo:     holidayRepo,
		clientClient:    clientClient,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: phone=%s, plate=%s, date=%s, time=%s, service=%s",
		req.ClientPhone, req.VehiclePlate, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// Weak link to the client registry. Degraded or missing registry data
	// never blocks a booking, the snapshot fields carry everything needed.
	var clientID *int64
	registered, err := uc.clientClient.FindByPhoneWithGracefulDegradation(ctx, normalizePhone(req.ClientPhone))
	switch {
	case err == nil:
		clientID = ptr.Ptr(registered.ID)
	case errors.Is(err, clientClient.ErrClientNotFound):
		// walk-in client, nothing to link
	case errors.Is(err, clientClient.ErrServiceDegraded):
		uc.logger.Warn("CreateAppointment: client registry degraded, booking without client link")
	default:
		uc.logger.Error("CreateAppointment: client lookup failed: %v", err)
		return nil, fmt.Errorf("%w: client lookup failed: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		workingHours, err := uc.scheduleRepo.GetByWeekday(txCtx, domain.WeekdayIndex(req.Date))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
				uc.logger.Warn("CreateAppointment: no working hours for weekday %d", domain.WeekdayIndex(req.Date))
				return ErrScheduleNotConfigured
			}
			uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		if !workingHours.IsOpen {
			uc.logger.Warn("CreateAppointment: station closed on %s", req.Date.Format(domain.DateFormat))
			return ErrStationClosed
		}

		holidays, err := uc.holidayRepo.GetRelevantForYear(txCtx, req.Date.Year())
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get holidays: %v", err)
			return fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}
		for _, h := range holidays {
			if h.Matches(req.Date) {
				uc.logger.Warn("CreateAppointment: %s is a holiday (%s)", req.Date.Format(domain.DateFormat), h.Name)
				return fmt.Errorf("%w: %s", ErrHolidayDate, h.Name)
			}
		}

		durationMinutes := req.ServiceType.DefaultDuration()
		if req.DurationMinutes != nil {
			durationMinutes = *req.DurationMinutes
		}

		if err := validateSlotFits(workingHours, req.StartTime, durationMinutes); err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			return err
		}

		if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
			uc.logger.Warn("CreateAppointment: booking time validation failed: %v", err)
			return err
		}

		// Locks the day's rows (FOR UPDATE) before counting occupancy
		filter := domain.AppointmentsFilter{
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		overlappingCount, err := countOverlappingAppointments(req.StartTime, durationMinutes, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to count overlapping appointments: %v", ErrInternal, err)
		}

		if overlappingCount >= workingHours.MaxAppointments {
			uc.logger.Warn("CreateAppointment: slot not available, %d/%d places taken",
				overlappingCount, workingHours.MaxAppointments)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateAppointment: slot available, %d/%d places taken",
			overlappingCount, workingHours.MaxAppointments)

		endTime, err := req.StartTime.AddMinutes(durationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		created, err := uc.createWithFreshCode(txCtx, &domain.Appointment{
			ClientID:        clientID,
			ClientName:      req.ClientName,
			ClientPhone:     normalizePhone(req.ClientPhone),
			ClientEmail:     req.ClientEmail,
			VehiclePlate:    normalizePlate(req.VehiclePlate),
			VehicleMake:     req.VehicleMake,
			VehicleModel:    req.VehicleModel,
			VehicleYear:     req.VehicleYear,
			VehicleCategory: req.VehicleCategory,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: durationMinutes,
			ServiceType:     req.ServiceType,
			ServiceNotes:    req.ServiceNotes,
			Status:          domain.StatusPending,
		})
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d code=%s", result.ID, result.ConfirmationCode)

	uc.notifyClient.SendEventAsync(notifyservice.AppointmentEvent{
		Type:             notifyservice.EventAppointmentCreated,
		AppointmentID:    result.ID,
		ConfirmationCode: result.ConfirmationCode,
		ClientName:       result.ClientName,
		ClientPhone:      result.ClientPhone,
		ClientEmail:      result.ClientEmail,
		VehiclePlate:     result.VehiclePlate,
		AppointmentDate:  result.AppointmentDate.Format(domain.DateFormat),
		StartTime:        result.StartTime.String(),
		Status:           string(result.Status),
	})

	return toResponse(result), nil
}

// createWithFreshCode inserts the appointment with a freshly generated
// confirmation code. Taken codes are skipped up front; the insert still
// retries on the unique-constraint error because a concurrent booking can
// claim the code between the check and the insert.
func (uc *UseCase) createWithFreshCode(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code, err := generateConfirmationCode()
		if err != nil {
			return nil, err
		}

		exists, err := uc.appointmentRepo.CodeExists(ctx, code)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check confirmation code: %v", err)
			return nil, fmt.Errorf("%w: failed to check confirmation code: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateAppointment: confirmation code already taken, regenerating (attempt %d)", attempt+1)
			continue
		}
		appt.ConfirmationCode = code

		created, err := uc.appointmentRepo.Create(ctx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrDuplicateCode) {
				uc.logger.Warn("CreateAppointment: confirmation code collision, retrying (attempt %d)", attempt+1)
				continue
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return created, nil
	}

	return nil, ErrCodeGeneration
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:               appt.ID,
		ConfirmationCode: appt.ConfirmationCode,
		ClientID:         appt.ClientID,
		ClientName:       appt.ClientName,
		ClientPhone:      appt.ClientPhone,
		ClientEmail:      appt.ClientEmail,
		VehiclePlate:     appt.VehiclePlate,
		VehicleMake:      appt.VehicleMake,
		VehicleModel:     appt.VehicleModel,
		VehicleYear:      appt.VehicleYear,
		VehicleCategory:  appt.VehicleCategory,
		AppointmentDate:  appt.AppointmentDate,
		StartTime:        appt.StartTime,
		EndTime:          appt.EndTime,
		DurationMinutes:  appt.DurationMinutes,
		ServiceType:      appt.ServiceType,
		ServiceNotes:     appt.ServiceNotes,
		Status:           appt.Status,
		CreatedAt:        appt.CreatedAt,
		UpdatedAt:        appt.UpdatedAt,
	}
}
