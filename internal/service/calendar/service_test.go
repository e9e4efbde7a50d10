package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.AppointmentsFilter
	err          error
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	week []*domain.WorkingHours
	err  error
}

func (f *fakeScheduleRepo) GetAll(_ context.Context) ([]*domain.WorkingHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.week, nil
}

type fakeHolidayRepo struct {
	holidays []*domain.Holiday
	err      error
}

func (f *fakeHolidayRepo) GetRelevantForYear(_ context.Context, _ int) ([]*domain.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64, date time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		AppointmentDate: date,
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("10:30"),
		ClientName:      "Ion Popescu",
		VehiclePlate:    "B123ABC",
		ServiceType:     domain.ServiceItpAutoturism,
		Status:          status,
	}
}

func newTestService(appts *fakeAppointmentRepo, sched *fakeScheduleRepo, hol *fakeHolidayRepo) *Service {
	return NewService(appts, sched, hol, nopLogger{})
}

func openEveryDay() []*domain.WorkingHours {
	week := make([]*domain.WorkingHours, 0, 7)
	for dow := 0; dow <= 6; dow++ {
		week = append(week, &domain.WorkingHours{
			DayOfWeek:       dow,
			IsOpen:          true,
			OpenTime:        types.TimeString("08:00"),
			CloseTime:       types.TimeString("17:00"),
			SlotDuration:    30,
			MaxAppointments: 1,
		})
	}
	return week
}

func TestGetMonth_GroupsAppointmentsByDay(t *testing.T) {
	mar2 := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	mar15 := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		testAppointment(1, mar2, domain.StatusPending),
		testAppointment(2, mar2, domain.StatusConfirmed),
		testAppointment(3, mar2, domain.StatusCancelled),
		testAppointment(4, mar15, domain.StatusCompleted),
	}}

	svc := newTestService(appts, &fakeScheduleRepo{week: openEveryDay()}, &fakeHolidayRepo{})

	resp, err := svc.GetMonth(context.Background(), 2026, 3)
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 3, resp.Month)
	require.Len(t, resp.Days, 31)

	// days are ordered from the 1st
	assert.Equal(t, "2026-03-01", resp.Days[0].Date)
	assert.Equal(t, "2026-03-31", resp.Days[30].Date)

	day2 := resp.Days[1]
	assert.Equal(t, "2026-03-02", day2.Date)
	assert.Equal(t, 1, day2.DayOfWeek) // Monday
	assert.Equal(t, 3, day2.TotalAppointments)
	assert.Equal(t, map[string]int{
		"PENDING":   1,
		"CONFIRMED": 1,
		"CANCELLED": 1,
	}, day2.StatusCounts)
	require.Len(t, day2.Appointments, 3)
	assert.Equal(t, int64(1), day2.Appointments[0].ID)
	assert.Equal(t, "10:00", day2.Appointments[0].StartTime)
	assert.Equal(t, domain.StatusPending.Color(), day2.Appointments[0].StatusColor)

	day15 := resp.Days[14]
	assert.Equal(t, 1, day15.TotalAppointments)
	assert.Equal(t, map[string]int{"COMPLETED": 1}, day15.StatusCounts)

	// empty days still come back with zeroed counters
	day3 := resp.Days[2]
	assert.Equal(t, 0, day3.TotalAppointments)
	assert.Empty(t, day3.StatusCounts)
	assert.Empty(t, day3.Appointments)
}

func TestGetMonth_FilterCoversWholeMonthIncludingInactive(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	svc := newTestService(appts, &fakeScheduleRepo{week: openEveryDay()}, &fakeHolidayRepo{})

	_, err := svc.GetMonth(context.Background(), 2026, 2)
	require.NoError(t, err)

	require.NotNil(t, appts.lastFilter.StartDate)
	require.NotNil(t, appts.lastFilter.EndDate)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), *appts.lastFilter.StartDate)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), *appts.lastFilter.EndDate)
	assert.True(t, appts.lastFilter.IncludeInactive)
	assert.Nil(t, appts.lastFilter.Status)
}

func TestGetMonth_ClosedWeekdaysMarked(t *testing.T) {
	week := openEveryDay()
	week[0].IsOpen = false // Sunday closed

	svc := newTestService(&fakeAppointmentRepo{}, &fakeScheduleRepo{week: week}, &fakeHolidayRepo{})

	resp, err := svc.GetMonth(context.Background(), 2026, 3)
	require.NoError(t, err)

	// 2026-03-01 is a Sunday
	assert.False(t, resp.Days[0].IsOpen)
	assert.True(t, resp.Days[1].IsOpen)
	assert.False(t, resp.Days[7].IsOpen)
}

func TestGetMonth_UnconfiguredWeekdayIsClosed(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeHolidayRepo{})

	resp, err := svc.GetMonth(context.Background(), 2026, 3)
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.False(t, day.IsOpen, "day %s", day.Date)
	}
}

func TestGetMonth_HolidayOverridesOpenDay(t *testing.T) {
	hol := &fakeHolidayRepo{holidays: []*domain.Holiday{
		{
			Name:        "Ziua Națională a României",
			Date:        time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC),
			IsRecurring: true,
		},
	}}

	svc := newTestService(&fakeAppointmentRepo{}, &fakeScheduleRepo{week: openEveryDay()}, hol)

	resp, err := svc.GetMonth(context.Background(), 2026, 12)
	require.NoError(t, err)

	day1 := resp.Days[0]
	assert.Equal(t, "2026-12-01", day1.Date)
	assert.False(t, day1.IsOpen)
	assert.Equal(t, "Ziua Națională a României", day1.HolidayName)

	assert.True(t, resp.Days[1].IsOpen)
	assert.Empty(t, resp.Days[1].HolidayName)
}

func TestGetMonth_Validation(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeHolidayRepo{})

	for _, tc := range []struct {
		name  string
		year  int
		month int
	}{
		{"month zero", 2026, 0},
		{"month thirteen", 2026, 13},
		{"year too early", 1999, 3},
		{"year too late", 2101, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetMonth(context.Background(), tc.year, tc.month)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetMonth_RepositoryFailure(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("appointments", func(t *testing.T) {
		svc := newTestService(&fakeAppointmentRepo{err: boom}, &fakeScheduleRepo{}, &fakeHolidayRepo{})
		_, err := svc.GetMonth(context.Background(), 2026, 3)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("working hours", func(t *testing.T) {
		svc := newTestService(&fakeAppointmentRepo{}, &fakeScheduleRepo{err: boom}, &fakeHolidayRepo{})
		_, err := svc.GetMonth(context.Background(), 2026, 3)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("holidays", func(t *testing.T) {
		svc := newTestService(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeHolidayRepo{err: boom})
		_, err := svc.GetMonth(context.Background(), 2026, 3)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
