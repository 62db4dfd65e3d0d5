package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{name: "same day next month", start: date(2024, time.March, 15), n: 1, want: date(2024, time.April, 15)},
		{name: "clamps to leap february", start: date(2024, time.January, 31), n: 1, want: date(2024, time.February, 29)},
		{name: "clamps to february", start: date(2023, time.January, 31), n: 1, want: date(2023, time.February, 28)},
		{name: "crosses year", start: date(2024, time.November, 30), n: 3, want: date(2025, time.February, 28)},
		{name: "negative", start: date(2024, time.March, 31), n: -1, want: date(2024, time.February, 29)},
		{name: "negative crosses year", start: date(2024, time.January, 10), n: -13, want: date(2022, time.December, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.n))
		})
	}
}

func TestAddYears_LeapDay(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 28), AddYears(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2028, time.February, 29), AddYears(date(2024, time.February, 29), 4))
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(time.Date(2024, time.May, 3, 8, 30, 0, 123, time.UTC))
	assert.Equal(t, time.Date(2024, time.May, 3, 23, 59, 59, 0, time.UTC), got)
}

func TestWithDayOfMonth(t *testing.T) {
	assert.Equal(t, date(2024, time.February, 10), WithDayOfMonth(date(2024, time.February, 27), 10))
	assert.Equal(t, date(2023, time.February, 28), WithDayOfMonth(date(2023, time.February, 1), 31))
}

func TestBetween(t *testing.T) {
	start := date(2024, time.January, 31)

	assert.Equal(t, 29, DaysBetween(start, date(2024, time.February, 29)))
	assert.Equal(t, 0, MonthsBetween(start, date(2024, time.February, 29)))
	assert.Equal(t, 1, MonthsBetween(start, date(2024, time.March, 30)))
	assert.Equal(t, 2, MonthsBetween(start, date(2024, time.March, 31)))
	assert.Equal(t, 11, MonthsBetween(start, date(2025, time.January, 30)))
	assert.Equal(t, 1, YearsBetween(start, date(2025, time.January, 31)))
	assert.Equal(t, -1, MonthsBetween(date(2024, time.March, 15), date(2024, time.February, 15)))
	assert.Equal(t, 0, MonthsBetween(date(2024, time.March, 15), date(2024, time.February, 20)))
}

func TestFrequency(t *testing.T) {
	start := time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		freq Frequency
		next time.Time
	}{
		{freq: FrequencyDaily, next: time.Date(2024, time.February, 1, 23, 59, 59, 0, time.UTC)},
		{freq: FrequencyWeekly, next: time.Date(2024, time.February, 7, 23, 59, 59, 0, time.UTC)},
		{freq: FrequencyMonthly, next: time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)},
		{freq: FrequencyYearly, next: time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			assert.True(t, tt.freq.IsValid())
			assert.Equal(t, tt.next, tt.freq.Next(start))
		})
	}

	assert.False(t, Frequency("hourly").IsValid())
	assert.Equal(t, 1, FrequencyDaily.PeriodsBetween(start, FrequencyDaily.Next(start)))
	assert.Equal(t, 0, FrequencyMonthly.PeriodsBetween(start, FrequencyMonthly.Next(start)), "Jan 31 to Feb 29 is not a whole month")
	assert.Equal(t, 2, FrequencyWeekly.PeriodsBetween(date(2024, time.January, 1), date(2024, time.January, 20)))
}
