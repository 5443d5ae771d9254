package models

import "time"

// Learner represents a registered user of the trainer.
type Learner struct {
	ID                  int64     `json:"id" db:"id"`
	ChatID              int64     `json:"chat_id" db:"chat_id"` // Telegram chat for reminders
	Tier                Level     `json:"tier" db:"tier"`
	QuestionsPerSession int       `json:"questions_per_session" db:"questions_per_session"`
	NotificationEnabled bool      `json:"notification_enabled" db:"notification_enabled"`
	NotificationHour    int       `json:"notification_hour" db:"notification_hour"` // Hour of day (0-23)
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
