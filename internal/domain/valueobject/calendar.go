package valueobject

import "time"

// Month arithmetic keeps the day of month and clamps it to the last day of
// shorter months (Jan 31 + 1 month = Feb 28 or 29), never overflowing into the
// following month the way time.AddDate does.

// AddDays adds n calendar days, keeping the wall-clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddWeeks adds n weeks of seven calendar days.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 7*n)
}

// AddMonths adds n calendar months, clamping the day of month.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + n
	newYear := year + floorDiv(total, 12)
	newMonth := time.Month(floorMod(total, 12) + 1)

	if last := DaysInMonth(newYear, newMonth); day > last {
		day = last
	}

	return time.Date(newYear, newMonth, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYears adds n calendar years; Feb 29 becomes Feb 28 in non-leap years.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

// WithDayOfMonth returns t moved to the given day of the same month, clamped to the month length.
func WithDayOfMonth(t time.Time, day int) time.Time {
	year, month, _ := t.Date()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfDay returns midnight of t's date.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's date with zero nanoseconds.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween counts whole calendar days from start's date to end's date.
func DaysBetween(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	return int(e.Sub(s).Hours() / 24)
}

// MonthsBetween counts complete calendar months from start to end, truncated toward zero.
func MonthsBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	months := (ey-sy)*12 + int(em) - int(sm)
	days := ed - sd
	if months > 0 && days < 0 {
		months--
	} else if months < 0 && days > 0 {
		months++
	}

	return months
}

// YearsBetween counts complete calendar years from start to end.
func YearsBetween(start, end time.Time) int {
	return MonthsBetween(start, end) / 12
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
