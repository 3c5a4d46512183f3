package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Billing cycle values accepted on a subscription.
const (
	CycleMonthly = "monthly"
	CycleYearly  = "yearly"
	CycleCustom  = "custom" // requires CustomCycleDays
)

type Subscription struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name            string  `gorm:"not null"`
	Cost            float64 `gorm:"type:decimal(10,2);not null"`
	BillingCycle    string  `gorm:"type:varchar(20);not null;default:'monthly'"`
	CustomCycleDays *int
	NextBillingDate *time.Time `gorm:"index"`
	Category        string     `gorm:"default:'General'"`
	Notes           string

	// Stamped by the reminder dispatcher after a successful send.
	// Not user-editable.
	LastReminderSent *time.Time

	IsActive bool `gorm:"default:true"`

	gorm.Model
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
