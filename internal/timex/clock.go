package timex

import "time"

// Clock is the source of "now" for everything that depends on the current
// date: completion timestamps, due-date validation and overdue checks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DateOf strips the time of day from t, keeping the calendar day as observed
// in t's location. The result is midnight UTC, which is how DATE columns come
// back from the database.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is DateOf(c.Now()).
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
