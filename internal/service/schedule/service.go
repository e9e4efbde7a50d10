package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	holidayRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/holiday"
	scheduleRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/schedule"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/schedule/models"
)

// Service manages the weekly working hours template and the holiday
// registry that together decide which days are bookable.
type Service struct {
	scheduleRepo ScheduleRepository
	holidayRepo  HolidayRepository
	logger       Logger
}

// NewService creates the schedule service
func NewService(
	scheduleRepo ScheduleRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
		logger:       logger,
	}
}

// GetWeeklySchedule fetches the full weekly template
func (s *Service) GetWeeklySchedule(ctx context.Context) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("GetWeeklySchedule: fetching weekly template")

	week, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetWeeklySchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeeklySchedule(week), nil
}

// UpdateWorkingHours replaces the template of one weekday
func (s *Service) UpdateWorkingHours(ctx context.Context, dayOfWeek int, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: updating weekday %d", dayOfWeek)

	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	wh, err := req.ToDomain(dayOfWeek)
	if err != nil {
		s.logger.Warn("UpdateWorkingHours: invalid template for weekday %d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.scheduleRepo.Upsert(ctx, wh)
	if err != nil {
		s.logger.Error("UpdateWorkingHours: repository error for weekday %d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: updated weekday %d", dayOfWeek)
	resp := models.FromDomainWorkingHours(updated)
	return &resp, nil
}

// SeedDefaultSchedule installs the default weekly template on an empty
// database. Called once at startup; a configured schedule is left alone.
func (s *Service) SeedDefaultSchedule(ctx context.Context) error {
	exists, err := s.scheduleRepo.ExistsAny(ctx)
	if err != nil {
		return fmt.Errorf("%w: SeedDefaultSchedule - repository error: %v", ErrInternal, err)
	}
	if exists {
		return nil
	}

	s.logger.Info("SeedDefaultSchedule: installing default weekly template")

	for _, wh := range domain.DefaultWeeklySchedule() {
		if _, err := s.scheduleRepo.Upsert(ctx, wh); err != nil {
			s.logger.Error("SeedDefaultSchedule: failed to seed weekday %d: %v", wh.DayOfWeek, err)
			return fmt.Errorf("%w: SeedDefaultSchedule - repository error: %v", ErrInternal, err)
		}
	}

	return nil
}

// ListHolidays fetches the holiday registry
func (s *Service) ListHolidays(ctx context.Context) (*models.HolidayListResponse, error) {
	s.logger.Info("ListHolidays: fetching holiday registry")

	holidays, err := s.holidayRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHolidays - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHolidayList(holidays), nil
}

// CreateHoliday adds one holiday to the registry
func (s *Service) CreateHoliday(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayResponse, error) {
	s.logger.Info("CreateHoliday: adding holiday %q on %s", req.Name, req.Date)

	h, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateHoliday: invalid holiday: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.holidayRepo.Create(ctx, h)
	if err != nil {
		s.logger.Error("CreateHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHoliday: created holiday id=%d", created.ID)
	resp := models.FromDomainHoliday(created)
	return &resp, nil
}

// DeleteHoliday removes one holiday from the registry
func (s *Service) DeleteHoliday(ctx context.Context, id int64) error {
	s.logger.Info("DeleteHoliday: deleting holiday id=%d", id)

	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("DeleteHoliday: holiday id=%d not found", id)
			return ErrHolidayNotFound
		}
		s.logger.Error("DeleteHoliday: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteHoliday: deleted holiday id=%d", id)
	return nil
}

// SeedRomanianHolidays installs the Romanian national holidays of one
// year: the fixed recurring dates plus the movable Orthodox feasts
// computed from the Easter date. Re-running is safe, existing entries
// are skipped.
func (s *Service) SeedRomanianHolidays(ctx context.Context, year int) (*models.SeedHolidaysResponse, error) {
	s.logger.Info("SeedRomanianHolidays: seeding national holidays for %d", year)

	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: implausible year %d", ErrInvalidInput, year)
	}

	inserted, err := s.holidayRepo.BulkCreate(ctx, domain.GenerateRomanianHolidays(year))
	if err != nil {
		s.logger.Error("SeedRomanianHolidays: repository error for year %d: %v", year, err)
		return nil, fmt.Errorf("%w: SeedRomanianHolidays - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SeedRomanianHolidays: inserted %d holidays for %d", inserted, year)
	return &models.SeedHolidaysResponse{Year: year, Inserted: inserted}, nil
}

// GetWorkingHours fetches the template of one weekday
func (s *Service) GetWorkingHours(ctx context.Context, dayOfWeek int) (*models.WorkingHoursResponse, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	wh, err := s.scheduleRepo.GetByWeekday(ctx, dayOfWeek)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
			return nil, ErrWorkingHoursNotFound
		}
		s.logger.Error("GetWorkingHours: repository error for weekday %d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainWorkingHours(wh)
	return &resp, nil
}
