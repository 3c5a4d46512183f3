// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;index;not null"`
	DaysBefore     int       // lead-time offset the reminder fired at
	Channel        string    `gorm:"type:varchar(20)"` // email, sms
	Status         string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time
	gorm.Model
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
