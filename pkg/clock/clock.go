package clock

import "time"

// Normalize truncates t to its calendar day: UTC midnight.
func Normalize(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds the UTC calendar day year-month-day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns t shifted by n whole days. Pure day count, no
// calendar-month arithmetic.
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of whole days from a to b, negative when b
// precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Normalize(b).Sub(Normalize(a)) / (24 * time.Hour))
}

// Clock supplies the current calendar day.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time { return Normalize(time.Now()) }

// System returns a Clock backed by the wall clock, normalized to UTC days.
func System() Clock { return systemClock{} }

type fixedClock struct {
	day time.Time
}

func (c fixedClock) Today() time.Time { return c.day }

// Fixed returns a Clock pinned to a single day, for tests and reproducible
// simulations.
func Fixed(day time.Time) Clock { return fixedClock{day: Normalize(day)} }
