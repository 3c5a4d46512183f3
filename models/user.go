package models

import (
	"subtrackr-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string

	// Reminder delivery preferences. Email is the default channel,
	// SMS is opt-in and needs a phone number on file.
	EmailReminders bool `gorm:"default:true"`
	SMSReminders   bool `gorm:"default:false"`

	Subscriptions []Subscription `gorm:"foreignKey:UserID"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
