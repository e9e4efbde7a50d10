package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itpmanager/ITP-SchedulingService/pkg/types"
)

func ts(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

func validWorkingHours() *WorkingHours {
	return &WorkingHours{
		DayOfWeek:       1,
		IsOpen:          true,
		OpenTime:        "08:00",
		CloseTime:       "17:00",
		BreakStart:      ts("12:00"),
		BreakEnd:        ts("13:00"),
		SlotDuration:    30,
		MaxAppointments: 1,
	}
}

func TestWorkingHours_Validate(t *testing.T) {
	t.Run("valid full config", func(t *testing.T) {
		assert.NoError(t, validWorkingHours().Validate())
	})

	t.Run("closed day skips time checks", func(t *testing.T) {
		wh := &WorkingHours{DayOfWeek: 0, IsOpen: false}
		assert.NoError(t, wh.Validate())
	})

	t.Run("day of week out of range", func(t *testing.T) {
		wh := validWorkingHours()
		wh.DayOfWeek = 7
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("open must be before close", func(t *testing.T) {
		wh := validWorkingHours()
		wh.OpenTime = "17:00"
		wh.CloseTime = "08:00"
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("open equal to close rejected", func(t *testing.T) {
		wh := validWorkingHours()
		wh.OpenTime = "08:00"
		wh.CloseTime = "08:00"
		wh.BreakStart = nil
		wh.BreakEnd = nil
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("slot duration bounds", func(t *testing.T) {
		wh := validWorkingHours()
		wh.SlotDuration = 3
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)

		wh.SlotDuration = 481
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("max appointments bounds", func(t *testing.T) {
		wh := validWorkingHours()
		wh.MaxAppointments = 0
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)

		wh.MaxAppointments = 21
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("break fields set together", func(t *testing.T) {
		wh := validWorkingHours()
		wh.BreakEnd = nil
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("break must sit inside opening hours", func(t *testing.T) {
		wh := validWorkingHours()
		wh.BreakStart = ts("07:00")
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)

		wh = validWorkingHours()
		wh.BreakEnd = ts("18:00")
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)

		wh = validWorkingHours()
		wh.BreakStart = ts("13:00")
		wh.BreakEnd = ts("12:00")
		assert.ErrorIs(t, wh.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("break touching the boundaries is allowed", func(t *testing.T) {
		wh := validWorkingHours()
		wh.BreakStart = ts("08:00")
		wh.BreakEnd = ts("09:00")
		assert.NoError(t, wh.Validate())

		wh = validWorkingHours()
		wh.BreakStart = ts("16:00")
		wh.BreakEnd = ts("17:00")
		assert.NoError(t, wh.Validate())
	})
}

func TestWorkingHours_HasBreak(t *testing.T) {
	wh := validWorkingHours()
	assert.True(t, wh.HasBreak())

	wh.BreakStart = nil
	wh.BreakEnd = nil
	assert.False(t, wh.HasBreak())
}

func TestWeekdayIndex(t *testing.T) {
	// 2026-08-23 is a Sunday
	assert.Equal(t, 0, WeekdayIndex(time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, WeekdayIndex(time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 6, WeekdayIndex(time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)))
}

func TestDefaultWeeklySchedule(t *testing.T) {
	week := DefaultWeeklySchedule()
	require.Len(t, week, 7)

	for day, wh := range week {
		require.Equal(t, day, wh.DayOfWeek)
		require.NoError(t, wh.Validate(), "weekday %d", day)
		assert.Equal(t, DefaultSlotDurationMinutes, wh.SlotDuration)
		assert.Equal(t, DefaultMaxAppointments, wh.MaxAppointments)
	}

	sunday := week[0]
	assert.False(t, sunday.IsOpen)

	monday := week[1]
	assert.True(t, monday.IsOpen)
	assert.Equal(t, types.TimeString("08:00"), monday.OpenTime)
	assert.Equal(t, types.TimeString("17:00"), monday.CloseTime)
	require.True(t, monday.HasBreak())
	assert.Equal(t, types.TimeString("12:00"), *monday.BreakStart)
	assert.Equal(t, types.TimeString("13:00"), *monday.BreakEnd)

	saturday := week[6]
	assert.True(t, saturday.IsOpen)
	assert.Equal(t, types.TimeString("09:00"), saturday.OpenTime)
	assert.Equal(t, types.TimeString("13:00"), saturday.CloseTime)
	assert.False(t, saturday.HasBreak())
}
