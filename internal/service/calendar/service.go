package calendar

import (
	"context"
	"fmt"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/calendar/models"
	"github.com/itpmanager/ITP-SchedulingService/pkg/ptr"
)

// Service aggregates a month of appointments into the day summaries the
// staff calendar renders: per-day status counts plus the cell entries,
// with closed days and holidays marked.
type Service struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	holidayRepo     HolidayRepository
	logger          Logger
}

// NewService creates the calendar service
func NewService(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		holidayRepo:     holidayRepo,
		logger:          logger,
	}
}

// GetMonth builds the calendar of one month. Cancelled and no-show
// appointments are included, the UI greys them out by status color.
func (s *Service) GetMonth(ctx context.Context, year, month int) (*models.CalendarResponse, error) {
	s.logger.Info("GetMonth: building calendar for %d-%02d", year, month)

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: implausible year %d", ErrInvalidInput, year)
	}

	first, last := models.MonthBounds(year, month)

	filter := domain.AppointmentsFilter{
		StartDate:       ptr.Ptr(first),
		EndDate:         ptr.Ptr(last),
		IncludeInactive: true,
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetMonth: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: GetMonth - failed to get appointments: %v", ErrInternal, err)
	}

	weeklyHours, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetMonth: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: GetMonth - failed to get working hours: %v", ErrInternal, err)
	}

	openByWeekday := make(map[int]bool, len(weeklyHours))
	for _, wh := range weeklyHours {
		openByWeekday[wh.DayOfWeek] = wh.IsOpen
	}

	holidays, err := s.holidayRepo.GetRelevantForYear(ctx, year)
	if err != nil {
		s.logger.Error("GetMonth: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: GetMonth - failed to get holidays: %v", ErrInternal, err)
	}

	// Group appointments by their ISO date
	byDate := make(map[string][]*domain.Appointment)
	for _, appt := range appointments {
		key := appt.AppointmentDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], appt)
	}

	days := make([]models.DayData, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DateFormat)
		weekday := domain.WeekdayIndex(d)

		day := models.DayData{
			Date:         key,
			DayOfWeek:    weekday,
			IsOpen:       openByWeekday[weekday],
			StatusCounts: make(map[string]int),
			Appointments: make([]models.AppointmentSummary, 0),
		}

		for _, h := range holidays {
			if h.Matches(d) {
				day.IsOpen = false
				day.HolidayName = h.Name
				break
			}
		}

		for _, appt := range byDate[key] {
			day.TotalAppointments++
			day.StatusCounts[string(appt.Status)]++
			day.Appointments = append(day.Appointments, models.FromDomainAppointmentSummary(appt))
		}

		days = append(days, day)
	}

	s.logger.Info("GetMonth: built calendar for %d-%02d with %d appointments", year, month, len(appointments))

	return &models.CalendarResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}
