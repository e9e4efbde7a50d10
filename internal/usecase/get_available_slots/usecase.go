package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	scheduleRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/schedule"
	"github.com/itpmanager/ITP-SchedulingService/pkg/ptr"
)

// UseCase computes the bookable slots of one day. Used twice: directly by
// the public availability endpoint, and inside the booking transaction to
// re-check the requested slot under row locks.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	holidayRepo     HolidayRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the slot availability use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		holidayRepo:     holidayRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute computes the availability of the requested day.
//
// Whole-day unavailability is reported with a reason, checked in order:
// past date, closed weekday, holiday. For an open day every candidate
// start time is returned with its occupancy, so fully booked and break
// slots still show up in the grid.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return unavailable(req.Date, domain.ReasonPastDate, nil), nil
	}

	workingHours, err := uc.scheduleRepo.GetByWeekday(ctx, domain.WeekdayIndex(req.Date))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
			uc.logger.Warn("GetAvailableSlots: no working hours for weekday %d", domain.WeekdayIndex(req.Date))
			return nil, ErrScheduleNotConfigured
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	if !workingHours.IsOpen {
		uc.logger.Info("GetAvailableSlots: station closed on %s", req.Date.Format(domain.DateFormat))
		return unavailable(req.Date, domain.ReasonClosedDay, nil), nil
	}

	holidays, err := uc.holidayRepo.GetRelevantForYear(ctx, req.Date.Year())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	for _, h := range holidays {
		if h.Matches(req.Date) {
			uc.logger.Info("GetAvailableSlots: %s is a holiday (%s)", req.Date.Format(domain.DateFormat), h.Name)
			return unavailable(req.Date, domain.ReasonHoliday, ptr.Ptr(h.Name)), nil
		}
	}

	durationMinutes := resolveDuration(req, workingHours)

	slots, err := generateSlots(workingHours, durationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	filter := domain.AppointmentsFilter{
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots = fillOccupancy(slots, durationMinutes, appointments, now, isSameDay(req.Date, now))

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, duration=%d",
		len(slots), req.Date.Format(domain.DateFormat), durationMinutes)

	return &Response{
		Date:            req.Date,
		IsAvailable:     true,
		WorkingHours:    workingHoursInfo(workingHours),
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}, nil
}

func unavailable(date time.Time, reason domain.DayUnavailableReason, holidayName *string) *Response {
	return &Response{
		Date:        date,
		IsAvailable: false,
		Reason:      &reason,
		HolidayName: holidayName,
		Slots:       []Slot{},
	}
}
