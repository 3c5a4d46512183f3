// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateBillingCycle checks a billing cycle value and its custom cycle
// length. customDays only matters for the "custom" cycle, where it must
// be a positive day count.
func ValidateBillingCycle(cycle string, customDays *int) bool {
	switch cycle {
	case "monthly", "yearly":
		return true
	case "custom":
		return customDays != nil && *customDays > 0
	default:
		return false
	}
}
