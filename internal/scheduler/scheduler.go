package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/vocabcoach/internal/spaced_repetition"
	"github.com/example/vocabcoach/pkg/models"
)

// Default notification window
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier interface for sending due-review reminders
type Notifier interface {
	SendReminder(chatID int64, dueCount int) error
}

// LearnerSource supplies learners who want a reminder at a given hour
type LearnerSource interface {
	GetLearnersForNotification(hour int) ([]models.Learner, error)
}

// VocabularySource supplies per-learner vocabulary snapshots
type VocabularySource interface {
	GetByLearner(learnerID int64) ([]models.VocabularyItem, error)
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	learners  LearnerSource
	vocab     VocabularySource
}

// New creates a new scheduler instance
func New(notifier Notifier, learners LearnerSource, vocab VocabularySource) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		learners:  learners,
		vocab:     vocab,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check for learners whose notification hour has arrived
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders finds learners due a reminder this hour and
// tells them how many words await review, capped at their daily load.
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	startHour := hourFromEnv("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := hourFromEnv("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	learners, err := s.learners.GetLearnersForNotification(currentHour)
	if err != nil {
		log.Printf("Error getting learners for notification: %v", err)
		return
	}

	now := time.Now()
	for _, learner := range learners {
		count, err := s.DueCount(learner, now)
		if err != nil {
			log.Printf("Error counting due items for learner %d: %v", learner.ID, err)
			continue
		}
		if count == 0 {
			continue
		}
		if err := s.notifier.SendReminder(learner.ChatID, count); err != nil {
			log.Printf("Error sending reminder to learner %d: %v", learner.ID, err)
		}
	}
}

// DueCount returns how many items a learner would be asked to review
// right now, after the tier capacity cap.
func (s *Scheduler) DueCount(learner models.Learner, now time.Time) (int, error) {
	items, err := s.vocab.GetByLearner(learner.ID)
	if err != nil {
		return 0, err
	}
	due := spaced_repetition.SelectDue(items, now, learner.Tier, len(items))
	return len(due), nil
}

// hourFromEnv reads an hour-of-day override from the environment.
func hourFromEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
