// utils/dates.go
package utils

import "time"

// BeginningOfDayUTC truncates an instant to its UTC calendar day.
func BeginningOfDayUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns the last representable millisecond of the
// instant's UTC calendar day.
func EndOfDayUTC(t time.Time) time.Time {
	return BeginningOfDayUTC(t).Add(24*time.Hour - time.Millisecond)
}

// DaysBetweenUTC counts whole UTC calendar days from start to end.
// Both instants are truncated to their calendar day first, so a date
// nine hours away and a date thirty-three hours away can both be
// "tomorrow". Negative when end is before start.
func DaysBetweenUTC(start, end time.Time) int {
	start = BeginningOfDayUTC(start)
	end = BeginningOfDayUTC(end)
	return int(end.Sub(start).Hours() / 24)
}

// SameDayUTC reports whether two instants fall on the same UTC calendar day.
func SameDayUTC(a, b time.Time) bool {
	return BeginningOfDayUTC(a).Equal(BeginningOfDayUTC(b))
}
