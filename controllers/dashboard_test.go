package controllers

import (
	"testing"

	"subtrackr-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyCost(t *testing.T) {
	days := func(d int) *int { return &d }

	tests := []struct {
		name string
		sub  models.Subscription
		want float64
	}{
		{"monthly passes through", models.Subscription{BillingCycle: models.CycleMonthly, Cost: 12}, 12},
		{"yearly divided by twelve", models.Subscription{BillingCycle: models.CycleYearly, Cost: 120}, 10},
		{"custom scaled to 30 days", models.Subscription{BillingCycle: models.CycleCustom, Cost: 10, CustomCycleDays: days(15)}, 20},
		{"custom without days falls back to cost", models.Subscription{BillingCycle: models.CycleCustom, Cost: 10}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MonthlyCost(tt.sub), 0.001)
		})
	}
}

func TestRenewalLabel(t *testing.T) {
	assert.Equal(t, "Today", renewalLabel(0))
	assert.Equal(t, "Tomorrow", renewalLabel(1))
	assert.Equal(t, "5 days", renewalLabel(5))
}
