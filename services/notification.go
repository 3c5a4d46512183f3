// services/notification.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DueNotification is the ephemeral "remind this owner about this renewal"
// record a scan produces. It is consumed once by the dispatcher and never
// persisted; only the delivery attempt is logged.
type DueNotification struct {
	UserID         uuid.UUID
	SubscriptionID uuid.UUID

	UserName  string
	Email     string
	Phone     string
	WantEmail bool
	WantSMS   bool

	SubscriptionName string
	Cost             float64
	NextBillingDate  time.Time
	DaysBefore       int
}

func (n DueNotification) Subject() string {
	return fmt.Sprintf("%s renews %s", n.SubscriptionName, leadPhrase(n.DaysBefore))
}

func (n DueNotification) Body() string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour %s subscription renews %s, on %s, for %.2f.\n\nIf you no longer need it, now is a good time to cancel.",
		n.UserName,
		n.SubscriptionName,
		leadPhrase(n.DaysBefore),
		n.NextBillingDate.UTC().Format("2006-01-02"),
		n.Cost,
	)
}

// SMSBody is a shorter rendering for the SMS channel.
func (n DueNotification) SMSBody() string {
	return fmt.Sprintf("%s renews %s (%s) for %.2f.",
		n.SubscriptionName,
		leadPhrase(n.DaysBefore),
		n.NextBillingDate.UTC().Format("2006-01-02"),
		n.Cost,
	)
}

func leadPhrase(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
