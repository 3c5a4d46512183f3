package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetweenUTC(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same instant", now, 0},
		{"later same day", time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), 0},
		{"nine hours away, next day", time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC), 1},
		{"thirty-three hours away, next day", time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC), 1},
		{"three days out, early morning", time.Date(2024, 1, 4, 0, 30, 0, 0, time.UTC), 3},
		{"yesterday", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), -1},
		{"across month boundary", time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetweenUTC(now, tt.end))
		})
	}
}

func TestDaysBetweenUTC_NonUTCInputs(t *testing.T) {
	// 23:00 in UTC-3 is 02:00 UTC the next day; the calendar day is
	// the UTC one.
	loc := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 23, 0, 0, 0, loc)

	assert.Equal(t, 1, DaysBetweenUTC(now, end))
}

func TestBeginningAndEndOfDayUTC(t *testing.T) {
	at := time.Date(2024, 6, 15, 13, 45, 12, 999, time.UTC)

	start := BeginningOfDayUTC(at)
	end := EndOfDayUTC(at)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, 999000000, time.UTC), end)
}

func TestSameDayUTC(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDayUTC(a, b))
	assert.False(t, SameDayUTC(b, c))
}
