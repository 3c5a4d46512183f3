package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+15551234567"))
	assert.True(t, ValidatePhone("+1 (555) 123-4567"))
	assert.False(t, ValidatePhone("not-a-phone"))
	assert.False(t, ValidatePhone("+0123"))
}

func TestValidateBillingCycle(t *testing.T) {
	days := func(d int) *int { return &d }

	assert.True(t, ValidateBillingCycle("monthly", nil))
	assert.True(t, ValidateBillingCycle("yearly", nil))
	assert.True(t, ValidateBillingCycle("custom", days(14)))
	assert.False(t, ValidateBillingCycle("custom", nil))
	assert.False(t, ValidateBillingCycle("custom", days(0)))
	assert.False(t, ValidateBillingCycle("custom", days(-7)))
	assert.False(t, ValidateBillingCycle("weekly", nil))
	assert.False(t, ValidateBillingCycle("", nil))
}
