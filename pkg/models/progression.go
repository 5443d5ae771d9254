package models

import "time"

// ProgressionState is the gamification ledger for one learner.
type ProgressionState struct {
	LearnerID         int64     `json:"learner_id" db:"learner_id"`
	TotalPoints       int       `json:"total_points" db:"total_points"`
	CurrentStreakDays int       `json:"current_streak_days" db:"current_streak_days"`
	LastActivityDate  time.Time `json:"last_activity_date" db:"last_activity_date"`
}
