package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDueAtOffset(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	leadDays := []int{0, 1, 3}

	date := func(d time.Time) *time.Time { return &d }

	tests := []struct {
		name       string
		next       *time.Time
		wantOffset int
		wantDue    bool
	}{
		{"no billing date", nil, 0, false},
		{"later today", date(time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)), 0, true},
		{"earlier today", date(time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)), 0, true},
		{"tomorrow early", date(time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC)), 1, true},
		{"tomorrow late", date(time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)), 1, true},
		{"two days out", date(time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)), 0, false},
		{"three days out", date(time.Date(2024, 1, 4, 2, 0, 0, 0, time.UTC)), 3, true},
		{"four days out", date(time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)), 0, false},
		{"yesterday", date(time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, due := DueAtOffset(now, tt.next, leadDays)
			assert.Equal(t, tt.wantDue, due)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestDueAtOffset_EveryIntegerDistance(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	leadDays := []int{0, 1, 3}

	for k := -2; k <= 10; k++ {
		next := now.AddDate(0, 0, k)
		offset, due := DueAtOffset(now, &next, leadDays)

		wantDue := k == 0 || k == 1 || k == 3
		assert.Equal(t, wantDue, due, "k=%d", k)
		if wantDue {
			assert.Equal(t, k, offset, "k=%d", k)
		}
	}
}

func TestLeadPhrase(t *testing.T) {
	assert.Equal(t, "today", leadPhrase(0))
	assert.Equal(t, "tomorrow", leadPhrase(1))
	assert.Equal(t, "in 3 days", leadPhrase(3))
}
