// services/store.go
package services

import (
	"time"

	"subtrackr-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionStore is the slice of persistence the reminder engine needs.
// The production implementation is GORM over Postgres; tests swap in an
// in-memory fake.
type SubscriptionStore interface {
	// RenewingBetween returns active subscriptions whose next billing
	// date falls inside [start, end] and that have not been reminded
	// since remindedBefore.
	RenewingBetween(start, end, remindedBefore time.Time) ([]models.Subscription, error)
	UserByID(id uuid.UUID) (*models.User, error)
	MarkReminderSent(subscriptionID uuid.UUID, at time.Time) error
	LogReminder(entry *models.ReminderLog) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) RenewingBetween(start, end, remindedBefore time.Time) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := g.db.
		Where("is_active = ?", true).
		Where("next_billing_date IS NOT NULL").
		Where("next_billing_date BETWEEN ? AND ?", start, end).
		Where("last_reminder_sent IS NULL OR last_reminder_sent < ?", remindedBefore).
		Find(&subs).Error
	return subs, err
}

func (g *GormStore) UserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := g.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *GormStore) MarkReminderSent(subscriptionID uuid.UUID, at time.Time) error {
	return g.db.Model(&models.Subscription{}).
		Where("id = ?", subscriptionID).
		Update("last_reminder_sent", at).Error
}

func (g *GormStore) LogReminder(entry *models.ReminderLog) error {
	return g.db.Create(entry).Error
}
