package valueobject

import "time"

// Frequency is the repetition period of a recurring template.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether f is one of the known frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// AddTo advances t by n periods using calendar-aware arithmetic.
func (f Frequency) AddTo(t time.Time, n int) time.Time {
	switch f {
	case FrequencyDaily:
		return AddDays(t, n)
	case FrequencyWeekly:
		return AddWeeks(t, n)
	case FrequencyMonthly:
		return AddMonths(t, n)
	case FrequencyYearly:
		return AddYears(t, n)
	default:
		return t
	}
}

// Next returns the due date one period after t, normalized to 23:59:59.
func (f Frequency) Next(t time.Time) time.Time {
	return EndOfDay(f.AddTo(t, 1))
}

// PeriodsBetween counts whole periods between start and end.
// Weeks are whole days divided by seven.
func (f Frequency) PeriodsBetween(start, end time.Time) int {
	switch f {
	case FrequencyDaily:
		return DaysBetween(start, end)
	case FrequencyWeekly:
		return DaysBetween(start, end) / 7
	case FrequencyMonthly:
		return MonthsBetween(start, end)
	case FrequencyYearly:
		return YearsBetween(start, end)
	default:
		return 0
	}
}
