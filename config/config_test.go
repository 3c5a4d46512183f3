package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/subtrackr_test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []int{0, 1, 3}, cfg.ReminderLeadDays)
	assert.Equal(t, 8, cfg.ReminderHourUTC)
	assert.Equal(t, 5, cfg.ReminderWorkers)
	assert.Equal(t, 10, cfg.SendTimeoutSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadReminderOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/subtrackr_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REMINDER_LEAD_DAYS", "0, 2, 7")
	t.Setenv("REMINDER_HOUR_UTC", "6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 7}, cfg.ReminderLeadDays)
	assert.Equal(t, 6, cfg.ReminderHourUTC)
}

func TestParseLeadDays(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{"empty falls back to default", "", []int{0, 1, 3}, false},
		{"single value", "5", []int{5}, false},
		{"spaces tolerated", " 0 , 1 , 3 ", []int{0, 1, 3}, false},
		{"duplicates collapsed", "1,1,3", []int{1, 3}, false},
		{"negative rejected", "0,-1", nil, true},
		{"garbage rejected", "0,soon", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLeadDays(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadRejectsBadHour(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/subtrackr_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REMINDER_HOUR_UTC", "24")

	_, err := Load()
	assert.Error(t, err)
}
