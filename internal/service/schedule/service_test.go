package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	holidayRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/holiday"
	scheduleRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/schedule"
	"github.com/itpmanager/ITP-SchedulingService/internal/service/schedule/models"
	"github.com/itpmanager/ITP-SchedulingService/pkg/ptr"
)

type fakeScheduleRepo struct {
	week      map[int]*domain.WorkingHours
	existsAny bool
	upserted  []*domain.WorkingHours
	err       error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{week: make(map[int]*domain.WorkingHours)}
}

func (f *fakeScheduleRepo) GetAll(_ context.Context) ([]*domain.WorkingHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	week := make([]*domain.WorkingHours, 0, len(f.week))
	for dow := 0; dow <= 6; dow++ {
		if wh, ok := f.week[dow]; ok {
			week = append(week, wh)
		}
	}
	return week, nil
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, dayOfWeek int) (*domain.WorkingHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	wh, ok := f.week[dayOfWeek]
	if !ok {
		return nil, scheduleRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.week[wh.DayOfWeek] = wh
	f.upserted = append(f.upserted, wh)
	return wh, nil
}

func (f *fakeScheduleRepo) ExistsAny(_ context.Context) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existsAny, nil
}

type fakeHolidayRepo struct {
	holidays    []*domain.Holiday
	nextID      int64
	bulkCreated []*domain.Holiday
	bulkResult  int
	deleted     []int64
	err         error
}

func (f *fakeHolidayRepo) GetAll(_ context.Context) ([]*domain.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays, nil
}

func (f *fakeHolidayRepo) Create(_ context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	created := *h
	created.ID = f.nextID
	f.holidays = append(f.holidays, &created)
	return &created, nil
}

func (f *fakeHolidayRepo) BulkCreate(_ context.Context, holidays []*domain.Holiday) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.bulkCreated = holidays
	return f.bulkResult, nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i, h := range f.holidays {
		if h.ID == id {
			f.holidays = append(f.holidays[:i], f.holidays[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return holidayRepo.ErrHolidayNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateWorkingHoursRequest {
	return &models.UpdateWorkingHoursRequest{
		IsOpen:          true,
		OpenTime:        "08:00",
		CloseTime:       "17:00",
		BreakStart:      ptr.Ptr("12:00"),
		BreakEnd:        ptr.Ptr("13:00"),
		SlotDuration:    30,
		MaxAppointments: 2,
	}
}

func TestUpdateWorkingHours(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewService(repo, &fakeHolidayRepo{}, nopLogger{})

	resp, err := svc.UpdateWorkingHours(context.Background(), 1, validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.DayOfWeek)
	assert.True(t, resp.IsOpen)
	assert.Equal(t, "08:00", resp.OpenTime)
	assert.Equal(t, "17:00", resp.CloseTime)
	require.NotNil(t, resp.BreakStart)
	assert.Equal(t, "12:00", *resp.BreakStart)
	assert.Equal(t, 2, resp.MaxAppointments)

	require.Len(t, repo.upserted, 1)
	assert.Equal(t, 1, repo.upserted[0].DayOfWeek)
}

func TestUpdateWorkingHours_InvalidWeekday(t *testing.T) {
	svc := NewService(newFakeScheduleRepo(), &fakeHolidayRepo{}, nopLogger{})

	_, err := svc.UpdateWorkingHours(context.Background(), -1, validUpdateRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateWorkingHours(context.Background(), 7, validUpdateRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateWorkingHours_InvalidTemplate(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewService(repo, &fakeHolidayRepo{}, nopLogger{})

	t.Run("close before open", func(t *testing.T) {
		req := validUpdateRequest()
		req.OpenTime = "17:00"
		req.CloseTime = "08:00"
		_, err := svc.UpdateWorkingHours(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed break time", func(t *testing.T) {
		req := validUpdateRequest()
		req.BreakStart = ptr.Ptr("noon")
		_, err := svc.UpdateWorkingHours(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("slot duration too small", func(t *testing.T) {
		req := validUpdateRequest()
		req.SlotDuration = 3
		_, err := svc.UpdateWorkingHours(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	assert.Empty(t, repo.upserted)
}

func TestGetWorkingHours(t *testing.T) {
	repo := newFakeScheduleRepo()
	for _, wh := range domain.DefaultWeeklySchedule() {
		repo.week[wh.DayOfWeek] = wh
	}
	svc := NewService(repo, &fakeHolidayRepo{}, nopLogger{})

	resp, err := svc.GetWorkingHours(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DayOfWeek)
	assert.True(t, resp.IsOpen)
	assert.Equal(t, "08:00", resp.OpenTime)

	_, err = svc.GetWorkingHours(context.Background(), 8)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWorkingHours_NotConfigured(t *testing.T) {
	svc := NewService(newFakeScheduleRepo(), &fakeHolidayRepo{}, nopLogger{})

	_, err := svc.GetWorkingHours(context.Background(), 3)
	assert.ErrorIs(t, err, ErrWorkingHoursNotFound)
}

func TestGetWeeklySchedule(t *testing.T) {
	repo := newFakeScheduleRepo()
	for _, wh := range domain.DefaultWeeklySchedule() {
		repo.week[wh.DayOfWeek] = wh
	}
	svc := NewService(repo, &fakeHolidayRepo{}, nopLogger{})

	resp, err := svc.GetWeeklySchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, 0, resp.Days[0].DayOfWeek)
	assert.False(t, resp.Days[0].IsOpen) // Sunday closed by default
	assert.True(t, resp.Days[6].IsOpen)  // Saturday morning
	assert.Equal(t, "13:00", resp.Days[6].CloseTime)
}

func TestSeedDefaultSchedule_EmptyDatabase(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewService(repo, &fakeHolidayRepo{}, nopLogger{})

	require.NoError(t, svc.SeedDefaultSchedule(context.Background()))
	assert.Len(t, repo.upserted, 7)
	assert.Len(t, repo.week, 7)
}

func TestSeedDefaultSchedule_ConfiguredScheduleLeftAlone(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.existsAny = true
	svc := NewService(repo, &fakeHolidayRepo{}, nopLogger{})

	require.NoError(t, svc.SeedDefaultSchedule(context.Background()))
	assert.Empty(t, repo.upserted)
}

func TestCreateHoliday(t *testing.T) {
	repo := &fakeHolidayRepo{}
	svc := NewService(newFakeScheduleRepo(), repo, nopLogger{})

	resp, err := svc.CreateHoliday(context.Background(), &models.CreateHolidayRequest{
		Name:        "Zi libera interna",
		Date:        "2026-07-17",
		IsRecurring: false,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Zi libera interna", resp.Name)
	assert.Equal(t, "2026-07-17", resp.Date)
	assert.False(t, resp.IsRecurring)
}

func TestCreateHoliday_Invalid(t *testing.T) {
	repo := &fakeHolidayRepo{}
	svc := NewService(newFakeScheduleRepo(), repo, nopLogger{})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.CreateHoliday(context.Background(), &models.CreateHolidayRequest{
			Name: "Test", Date: "17.07.2026",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := svc.CreateHoliday(context.Background(), &models.CreateHolidayRequest{
			Name: "", Date: "2026-07-17",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	assert.Empty(t, repo.holidays)
}

func TestListHolidays(t *testing.T) {
	repo := &fakeHolidayRepo{holidays: []*domain.Holiday{
		{
			ID:          1,
			Name:        "Ziua Muncii",
			Date:        time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC),
			IsRecurring: true,
		},
	}}
	svc := NewService(newFakeScheduleRepo(), repo, nopLogger{})

	resp, err := svc.ListHolidays(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Holidays, 1)
	assert.Equal(t, "Ziua Muncii", resp.Holidays[0].Name)
	assert.Equal(t, "2020-05-01", resp.Holidays[0].Date)
	assert.True(t, resp.Holidays[0].IsRecurring)
}

func TestDeleteHoliday(t *testing.T) {
	repo := &fakeHolidayRepo{holidays: []*domain.Holiday{{ID: 5, Name: "Test"}}}
	svc := NewService(newFakeScheduleRepo(), repo, nopLogger{})

	require.NoError(t, svc.DeleteHoliday(context.Background(), 5))
	assert.Equal(t, []int64{5}, repo.deleted)

	err := svc.DeleteHoliday(context.Background(), 5)
	assert.ErrorIs(t, err, ErrHolidayNotFound)
}

func TestSeedRomanianHolidays(t *testing.T) {
	repo := &fakeHolidayRepo{bulkResult: 17}
	svc := NewService(newFakeScheduleRepo(), repo, nopLogger{})

	resp, err := svc.SeedRomanianHolidays(context.Background(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 17, resp.Inserted)
	require.Len(t, repo.bulkCreated, 17)

	names := make(map[string]bool, len(repo.bulkCreated))
	for _, h := range repo.bulkCreated {
		names[h.Name] = true
	}
	assert.True(t, names["Paștele ortodox"])
	assert.True(t, names["Ziua Națională a României"])
}

func TestSeedRomanianHolidays_ImplausibleYear(t *testing.T) {
	svc := NewService(newFakeScheduleRepo(), &fakeHolidayRepo{}, nopLogger{})

	_, err := svc.SeedRomanianHolidays(context.Background(), 1999)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SeedRomanianHolidays(context.Background(), 2101)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSeedRomanianHolidays_RepositoryFailure(t *testing.T) {
	repo := &fakeHolidayRepo{err: errors.New("connection reset")}
	svc := NewService(newFakeScheduleRepo(), repo, nopLogger{})

	_, err := svc.SeedRomanianHolidays(context.Background(), 2026)
	assert.ErrorIs(t, err, ErrInternal)
}
