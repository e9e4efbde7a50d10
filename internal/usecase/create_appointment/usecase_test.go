package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
	appointmentRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/itpmanager/ITP-SchedulingService/internal/infra/storage/schedule"
	"github.com/itpmanager/ITP-SchedulingService/internal/integrations/clientservice"
	"github.com/itpmanager/ITP-SchedulingService/internal/integrations/notifyservice"
	"github.com/itpmanager/ITP-SchedulingService/pkg/ptr"
	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

type fakeAppointmentRepo struct {
	existing   []*domain.Appointment
	created    []*domain.Appointment
	nextID     int64
	takenCodes int // first N code lookups report the code as taken
	codeChecks int
	failCodes  int // first N creates fail with ErrDuplicateCode
	createErr  error
	filterErr  error
	lastFilter domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.failCodes > 0 {
		f.failCodes--
		return nil, appointmentRepo.ErrDuplicateCode
	}
	f.nextID++
	stored := *appt
	stored.ID = f.nextID
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.existing, f.filterErr
}

func (f *fakeAppointmentRepo) CodeExists(_ context.Context, _ string) (bool, error) {
	f.codeChecks++
	if f.takenCodes > 0 {
		f.takenCodes--
		return true, nil
	}
	return false, nil
}

type fakeScheduleRepo struct {
	byWeekday map[int]*domain.WorkingHours
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, dayOfWeek int) (*domain.WorkingHours, error) {
	wh, ok := f.byWeekday[dayOfWeek]
	if !ok {
		return nil, scheduleRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

type fakeHolidayRepo struct {
	holidays []*domain.Holiday
}

func (f *fakeHolidayRepo) GetRelevantForYear(_ context.Context, _ int) ([]*domain.Holiday, error) {
	return f.holidays, nil
}

type fakeClientClient struct {
	client *clientservice.RegisteredClient
	err    error
}

func (f *fakeClientClient) FindByPhoneWithGracefulDegradation(_ context.Context, _ string) (*clientservice.RegisteredClient, error) {
	return f.client, f.err
}

type fakeNotifyClient struct {
	events []notifyservice.AppointmentEvent
}

func (f *fakeNotifyClient) SendEventAsync(event notifyservice.AppointmentEvent) {
	f.events = append(f.events, event)
}

type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func breakTS(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

func mondayHours() *domain.WorkingHours {
	return &domain.WorkingHours{
		DayOfWeek:       1,
		IsOpen:          true,
		OpenTime:        "08:00",
		CloseTime:       "17:00",
		BreakStart:      breakTS("12:00"),
		BreakEnd:        breakTS("13:00"),
		SlotDuration:    30,
		MaxAppointments: 1,
	}
}

// 2026-03-02 is a Monday
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	uc     *UseCase
	appts  *fakeAppointmentRepo
	client *fakeClientClient
	notify *fakeNotifyClient
	tx     *passthroughTxManager
}

func newTestEnv() *testEnv {
	env := &testEnv{
		appts:  &fakeAppointmentRepo{},
		client: &fakeClientClient{err: clientservice.ErrClientNotFound},
		notify: &fakeNotifyClient{},
		tx:     &passthroughTxManager{},
	}
	env.uc = NewUseCase(
		env.appts,
		&fakeScheduleRepo{byWeekday: map[int]*domain.WorkingHours{1: mondayHours()}},
		&fakeHolidayRepo{},
		env.client,
		env.notify,
		env.tx,
		nopLogger{},
	)
	env.uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -7)}
	return env
}

func validRequest() *Request {
	return &Request{
		ClientName:      "Ion Popescu",
		ClientPhone:     "0722 123 456",
		VehiclePlate:    "b 123 abc",
		VehicleCategory: domain.VehicleAutoturism,
		Date:            monday,
		StartTime:       "10:00",
		ServiceType:     domain.ServiceItpAutoturism,
	}
}

func TestExecute_HappyPath(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Len(t, resp.ConfirmationCode, domain.ConfirmationCodeLength)
	for _, ch := range resp.ConfirmationCode {
		assert.Contains(t, codeAlphabet, string(ch))
	}

	// normalization of the snapshot fields
	assert.Equal(t, "0722123456", resp.ClientPhone)
	assert.Equal(t, "B123ABC", resp.VehiclePlate)
	assert.Nil(t, resp.ClientID)

	// service default applied
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)

	assert.Equal(t, 1, env.tx.calls)

	require.Len(t, env.notify.events, 1)
	event := env.notify.events[0]
	assert.Equal(t, notifyservice.EventAppointmentCreated, event.Type)
	assert.Equal(t, resp.ConfirmationCode, event.ConfirmationCode)
}

func TestExecute_WithoutVehiclePlate(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.VehiclePlate = ""

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "", resp.VehiclePlate)
	assert.Equal(t, domain.StatusPending, resp.Status)
}

func TestExecute_RegisteredClientLinked(t *testing.T) {
	env := newTestEnv()
	env.client.err = nil
	env.client.client = &clientservice.RegisteredClient{ID: 42, Name: "Ion Popescu"}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.ClientID)
	assert.Equal(t, int64(42), *resp.ClientID)
}

func TestExecute_RegistryDegradedStillBooks(t *testing.T) {
	env := newTestEnv()
	env.client.err = clientservice.ErrServiceDegraded

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.ClientID)
}

func TestExecute_SlotExhausted(t *testing.T) {
	env := newTestEnv()
	env.appts.existing = []*domain.Appointment{
		{StartTime: "10:00", EndTime: "10:30", Status: domain.StatusConfirmed},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, env.appts.created)
	assert.Empty(t, env.notify.events)
}

func TestExecute_BoundaryTouchDoesNotBlock(t *testing.T) {
	env := newTestEnv()
	env.appts.existing = []*domain.Appointment{
		{StartTime: "09:30", EndTime: "10:00", Status: domain.StatusConfirmed},
		{StartTime: "10:30", EndTime: "11:00", Status: domain.StatusConfirmed},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	env := newTestEnv()
	env.appts.existing = []*domain.Appointment{
		{StartTime: "10:00", EndTime: "10:30", Status: domain.StatusCancelled},
	}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Status)
}

func TestExecute_OffGridStart(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.StartTime = "10:15"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_FootprintPastClosing(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.StartTime = "16:30"
	req.ServiceType = domain.ServiceTahograf // 60 minutes, ends 17:30

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_FootprintOverlapsBreak(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.StartTime = "11:30"
	req.DurationMinutes = ptr.Ptr(60) // 11:30-12:30 crosses the break

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_EndingAtBreakStartAllowed(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.StartTime = "11:30" // 11:30-12:00 touches the break boundary

	_, err := env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_PastDate(t *testing.T) {
	env := newTestEnv()
	env.uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, 1)}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayPastSlot(t *testing.T) {
	env := newTestEnv()
	env.uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC),
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ClosedDay(t *testing.T) {
	env := newTestEnv()
	closed := mondayHours()
	closed.IsOpen = false
	env.uc.scheduleRepo = &fakeScheduleRepo{byWeekday: map[int]*domain.WorkingHours{1: closed}}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStationClosed)
}

func TestExecute_HolidayDate(t *testing.T) {
	env := newTestEnv()
	env.uc.holidayRepo = &fakeHolidayRepo{holidays: []*domain.Holiday{
		{Name: "Ziua Muncii", Date: monday},
	}}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHolidayDate)
}

func TestExecute_ScheduleNotConfigured(t *testing.T) {
	env := newTestEnv()
	env.uc.scheduleRepo = &fakeScheduleRepo{byWeekday: map[int]*domain.WorkingHours{}}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleNotConfigured)
}

func TestExecute_CodeCollisionRetries(t *testing.T) {
	env := newTestEnv()
	env.appts.failCodes = 2

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ConfirmationCode)
}

func TestExecute_TakenCodeRegeneratedBeforeInsert(t *testing.T) {
	env := newTestEnv()
	env.appts.takenCodes = 2

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ConfirmationCode)

	// two taken codes skipped up front, the third one inserted
	assert.Equal(t, 3, env.appts.codeChecks)
	assert.Len(t, env.appts.created, 1)
}

func TestExecute_TakenCodesExhausted(t *testing.T) {
	env := newTestEnv()
	env.appts.takenCodes = codeGenerationAttempts

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCodeGeneration)
	assert.Empty(t, env.appts.created)
}

func TestExecute_CodeCollisionExhausted(t *testing.T) {
	env := newTestEnv()
	env.appts.failCodes = codeGenerationAttempts

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCodeGeneration)
}

func TestExecute_Validation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.ClientName = "  " }},
		{"bad phone", func(r *Request) { r.ClientPhone = "12345" }},
		{"bad plate", func(r *Request) { r.VehiclePlate = "123" }},
		{"bad category", func(r *Request) { r.VehicleCategory = "CAMION" }},
		{"bad service type", func(r *Request) { r.ServiceType = "SPALATORIE" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
		{"non-padded start time", func(r *Request) { r.StartTime = "8:30" }},
		{"duration too short", func(r *Request) { r.DurationMinutes = ptr.Ptr(1) }},
		{"implausible year", func(r *Request) { r.VehicleYear = ptr.Ptr(1850) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NonCanonicalTimeCannotDoubleBook(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.StartTime = "8:30"

	// a non-padded time would slip past the occupancy count, so it must
	// never reach the insert
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, env.appts.created)
}

func TestExecute_StorageFailure(t *testing.T) {
	env := newTestEnv()
	env.appts.createErr = errors.New("connection reset")

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, env.notify.events)
}

func TestGenerateConfirmationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generateConfirmationCode()
		require.NoError(t, err)
		require.Len(t, code, domain.ConfirmationCodeLength)
		for _, ch := range code {
			assert.NotContains(t, "01OI", string(ch))
			assert.Contains(t, codeAlphabet, string(ch))
		}
		seen[code] = true
	}
	// 32^6 values, 100 draws colliding would mean a broken generator
	assert.Greater(t, len(seen), 95)
}
