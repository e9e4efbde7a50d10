package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHoliday_Matches(t *testing.T) {
	t.Run("one-off matches only the exact date", func(t *testing.T) {
		h := &Holiday{Name: "Paștele ortodox", Date: date(2026, time.April, 12)}

		assert.True(t, h.Matches(date(2026, time.April, 12)))
		assert.False(t, h.Matches(date(2027, time.April, 12)))
		assert.False(t, h.Matches(date(2026, time.April, 13)))
	})

	t.Run("recurring matches the same day every year", func(t *testing.T) {
		h := &Holiday{Name: "Ziua Națională a României", Date: date(2024, time.December, 1), IsRecurring: true}

		assert.True(t, h.Matches(date(2024, time.December, 1)))
		assert.True(t, h.Matches(date(2030, time.December, 1)))
		assert.False(t, h.Matches(date(2030, time.December, 2)))
		assert.False(t, h.Matches(date(2030, time.November, 1)))
	})
}

func TestHoliday_Validate(t *testing.T) {
	valid := &Holiday{Name: "Ziua Muncii", Date: date(2026, time.May, 1)}
	assert.NoError(t, valid.Validate())

	noName := &Holiday{Date: date(2026, time.May, 1)}
	assert.ErrorIs(t, noName.Validate(), ErrInvalidHoliday)

	noDate := &Holiday{Name: "Ziua Muncii"}
	assert.ErrorIs(t, noDate.Validate(), ErrInvalidHoliday)
}

func TestIsBlockedDate(t *testing.T) {
	holidays := []*Holiday{
		{Name: "Crăciunul", Date: date(2020, time.December, 25), IsRecurring: true},
		{Name: "Vinerea Mare", Date: date(2026, time.April, 10)},
	}

	assert.True(t, IsBlockedDate(holidays, date(2026, time.December, 25)))
	assert.True(t, IsBlockedDate(holidays, date(2026, time.April, 10)))
	assert.False(t, IsBlockedDate(holidays, date(2027, time.April, 10)))
	assert.False(t, IsBlockedDate(holidays, date(2026, time.July, 14)))
}

func TestOrthodoxEaster(t *testing.T) {
	// Known Orthodox Easter Sundays (Gregorian calendar)
	tests := []struct {
		year     int
		expected time.Time
	}{
		{2024, date(2024, time.May, 5)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 12)},
	}

	for _, tt := range tests {
		got := OrthodoxEaster(tt.year)
		assert.Equal(t, tt.expected, got, "year %d", tt.year)
		assert.Equal(t, time.Sunday, got.Weekday(), "year %d", tt.year)
	}
}

func TestGenerateRomanianHolidays(t *testing.T) {
	holidays := GenerateRomanianHolidays(2026)
	require.Len(t, holidays, 17)

	byName := make(map[string]*Holiday, len(holidays))
	for _, h := range holidays {
		require.NoError(t, h.Validate())
		byName[h.Name] = h
	}

	national := byName["Ziua Națională a României"]
	require.NotNil(t, national)
	assert.True(t, national.IsRecurring)
	assert.False(t, national.IsOrthodox)
	assert.Equal(t, date(2026, time.December, 1), national.Date)

	easter := byName["Paștele ortodox"]
	require.NotNil(t, easter)
	assert.False(t, easter.IsRecurring, "movable feasts are year-specific")
	assert.True(t, easter.IsOrthodox)
	assert.Equal(t, date(2026, time.April, 12), easter.Date)

	goodFriday := byName["Vinerea Mare"]
	require.NotNil(t, goodFriday)
	assert.Equal(t, date(2026, time.April, 10), goodFriday.Date)

	pentecost := byName["Rusaliile"]
	require.NotNil(t, pentecost)
	assert.Equal(t, easter.Date.AddDate(0, 0, 49), pentecost.Date)
}
