// services/matcher.go
package services

import (
	"time"

	"subtrackr-backend/utils"
)

// DueAtOffset decides whether a subscription renewing at nextBillingDate
// is due for a reminder at "now". The distance is measured in whole UTC
// calendar days, not elapsed hours, so anything dated tomorrow counts as
// one day away regardless of the time of day on either side. Returns the
// matching lead-time offset and true, or 0 and false when no offset in
// leadDays matches.
func DueAtOffset(now time.Time, nextBillingDate *time.Time, leadDays []int) (int, bool) {
	if nextBillingDate == nil {
		return 0, false
	}
	daysLeft := utils.DaysBetweenUTC(now, *nextBillingDate)
	for _, d := range leadDays {
		if daysLeft == d {
			return d, true
		}
	}
	return 0, false
}
