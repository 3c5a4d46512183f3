// services/reminder_service.go
package services

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"subtrackr-backend/models"
	"subtrackr-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ErrCycleInProgress is returned when a cycle is requested while another
// one is still running. The newer invocation is skipped, never queued.
var ErrCycleInProgress = errors.New("reminder cycle already in progress")

// CycleSummary records the outcome of one scan-and-dispatch cycle.
type CycleSummary struct {
	Trigger    string    `json:"trigger"` // "schedule" or "manual"
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Matched    int       `json:"matched"`
	Sent       int       `json:"sent"`
	Failed     int       `json:"failed"`
}

// ReminderService owns the daily renewal-reminder job: it scans the store
// for subscriptions renewing at one of the configured lead-time offsets
// and dispatches one reminder per match, isolating delivery failures.
type ReminderService struct {
	store SubscriptionStore
	email Transport
	sms   Transport // nil when SMS is not configured

	leadDays []int
	hourUTC  int
	workers  int

	log  *logrus.Logger
	cron *cron.Cron

	running   atomic.Bool
	mu        sync.Mutex
	lastCycle *CycleSummary
}

func NewReminderService(store SubscriptionStore, email, sms Transport, leadDays []int, hourUTC, workers int, log *logrus.Logger) *ReminderService {
	if workers < 1 {
		workers = 1
	}
	return &ReminderService{
		store:    store,
		email:    email,
		sms:      sms,
		leadDays: leadDays,
		hourUTC:  hourUTC,
		workers:  workers,
		log:      log,
	}
}

// StartScheduler registers the daily cron job and starts the timer.
func (s *ReminderService) StartScheduler() error {
	s.cron = cron.New(cron.WithLocation(time.UTC))

	spec := fmt.Sprintf("0 %d * * *", s.hourUTC)
	if _, err := s.cron.AddFunc(spec, func() {
		if _, err := s.RunCycle("schedule"); err != nil {
			if errors.Is(err, ErrCycleInProgress) {
				s.log.Info("Scheduled reminder cycle skipped: previous cycle still running")
			} else {
				s.log.Errorf("Scheduled reminder cycle failed: %v", err)
			}
		}
	}); err != nil {
		return fmt.Errorf("could not register reminder cron job: %w", err)
	}

	s.cron.Start()
	s.log.Infof("Reminder scheduler started, daily at %02d:00 UTC, lead days %v", s.hourUTC, s.leadDays)
	return nil
}

// Stop halts the timer. An in-flight cycle is not awaited.
func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.log.Info("Reminder scheduler stopped")
}

// RunCycle executes one scan-and-dispatch pass with "now" as the
// invocation instant. At most one cycle runs at a time; a collision
// returns ErrCycleInProgress and leaves the running cycle untouched.
func (s *ReminderService) RunCycle(trigger string) (*CycleSummary, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrCycleInProgress
	}
	defer s.running.Store(false)

	now := time.Now().UTC()
	summary := &CycleSummary{Trigger: trigger, StartedAt: now}

	s.log.Infof("Reminder cycle started (trigger=%s)", trigger)

	due, err := s.Scan(now)
	if err != nil {
		s.log.Errorf("Reminder scan failed, cycle aborted: %v", err)
		return nil, err
	}
	summary.Matched = len(due)

	summary.Sent, summary.Failed = s.Dispatch(due)
	summary.FinishedAt = time.Now().UTC()

	s.mu.Lock()
	s.lastCycle = summary
	s.mu.Unlock()

	s.log.Infof("Reminder cycle completed: %d matched, %d sent, %d failed", summary.Matched, summary.Sent, summary.Failed)
	return summary, nil
}

// LastCycle returns the summary of the most recently completed cycle,
// or nil if none has run yet.
func (s *ReminderService) LastCycle() *CycleSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastCycle == nil {
		return nil
	}
	copy := *s.lastCycle
	return &copy
}

// Scan produces the full list of due notifications for the given "now".
// It queries one full UTC day window per lead-time offset, re-verifies
// every hit against the day math, and emits each subscription at most
// once. A missing owner skips that record, not the scan; a store error
// aborts the scan.
func (s *ReminderService) Scan(now time.Time) ([]DueNotification, error) {
	remindedBefore := utils.BeginningOfDayUTC(now)

	var due []DueNotification
	seen := make(map[string]bool)

	for _, d := range s.leadDays {
		target := utils.BeginningOfDayUTC(now).AddDate(0, 0, d)
		windowStart := target
		windowEnd := utils.EndOfDayUTC(target)

		subs, err := s.store.RenewingBetween(windowStart, windowEnd, remindedBefore)
		if err != nil {
			return nil, fmt.Errorf("querying renewals %d days out: %w", d, err)
		}

		for _, sub := range subs {
			// Guard against boundary arithmetic placing a record in
			// more than one nominal window.
			daysLeft, ok := DueAtOffset(now, sub.NextBillingDate, s.leadDays)
			if !ok || seen[sub.ID.String()] {
				continue
			}

			user, err := s.store.UserByID(sub.UserID)
			if err != nil {
				s.log.Debugf("Skipping subscription %s: owner %s not resolvable: %v", sub.ID, sub.UserID, err)
				continue
			}

			seen[sub.ID.String()] = true
			due = append(due, DueNotification{
				UserID:           user.ID,
				SubscriptionID:   sub.ID,
				UserName:         user.Name,
				Email:            user.Email,
				Phone:            user.Phone,
				WantEmail:        user.EmailReminders,
				WantSMS:          user.SMSReminders,
				SubscriptionName: sub.Name,
				Cost:             sub.Cost,
				NextBillingDate:  sub.NextBillingDate.UTC(),
				DaysBefore:       daysLeft,
			})
		}
	}

	return due, nil
}

// Dispatch delivers every due notification on a bounded worker pool and
// waits for all of them. Failures are logged and counted, never fatal.
func (s *ReminderService) Dispatch(due []DueNotification) (sent, failed int) {
	if len(due) == 0 {
		return 0, 0
	}

	jobs := make(chan DueNotification)
	var sentCount, failedCount int64

	var wg sync.WaitGroup
	workers := s.workers
	if workers > len(due) {
		workers = len(due)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				if s.deliver(n) {
					atomic.AddInt64(&sentCount, 1)
				} else {
					atomic.AddInt64(&failedCount, 1)
				}
			}
		}()
	}

	for _, n := range due {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	return int(sentCount), int(failedCount)
}

// deliver sends one notification over every channel its owner opted into
// and records each attempt. It reports success if at least one channel
// went through, and stamps the subscription so the same calendar day
// does not remind twice.
func (s *ReminderService) deliver(n DueNotification) bool {
	delivered := false

	if n.WantEmail && n.Email != "" {
		err := s.email.Send(n.Email, n.Subject(), n.Body())
		s.logAttempt(n, "email", err)
		if err != nil {
			s.log.Warnf("Failed to email reminder for %s to %s: %v", n.SubscriptionName, n.Email, err)
		} else {
			delivered = true
		}
	}

	if n.WantSMS && n.Phone != "" && s.sms != nil {
		err := s.sms.Send(n.Phone, n.Subject(), n.SMSBody())
		s.logAttempt(n, "sms", err)
		if err != nil {
			s.log.Warnf("Failed to text reminder for %s to %s: %v", n.SubscriptionName, n.Phone, err)
		} else {
			delivered = true
		}
	}

	if delivered {
		if err := s.store.MarkReminderSent(n.SubscriptionID, time.Now().UTC()); err != nil {
			s.log.Warnf("Failed to stamp last_reminder_sent on %s: %v", n.SubscriptionID, err)
		}
	}

	return delivered
}

func (s *ReminderService) logAttempt(n DueNotification, channel string, sendErr error) {
	entry := &models.ReminderLog{
		UserID:         n.UserID,
		SubscriptionID: n.SubscriptionID,
		DaysBefore:     n.DaysBefore,
		Channel:        channel,
		Status:         "sent",
		SentAt:         time.Now().UTC(),
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.ErrorMessage = sendErr.Error()
	}

	if err := s.store.LogReminder(entry); err != nil {
		s.log.Warnf("Failed to log reminder attempt for %s: %v", n.SubscriptionID, err)
	}
}
