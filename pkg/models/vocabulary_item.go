package models

import "time"

// Level is the fixed difficulty band a word is tagged with at creation.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// VocabularyItem is one learner's record of one word, including the
// SM-2 scheduling state that decides when it comes up for review again.
type VocabularyItem struct {
	ID             string    `json:"id" db:"id"`
	LearnerID      int64     `json:"learner_id" db:"learner_id"`
	Word           string    `json:"word" db:"word"`                 // The prompt shown to the learner
	Meaning        string    `json:"meaning" db:"meaning"`           // Canonical answer text
	SourceID       string    `json:"source_id" db:"source_id"`       // Originating content (e.g. a book); empty if none
	LevelTag       Level     `json:"level_tag" db:"level_tag"`       // Fixed at creation
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	EaseFactor     float64   `json:"ease_factor" db:"ease_factor"`   // SM-2 EF parameter, never below 1.3
	IntervalDays   int       `json:"interval_days" db:"interval_days"`
	Repetitions    int       `json:"repetitions" db:"repetitions"`   // Consecutive remembered outcomes
	NextReviewDate time.Time `json:"next_review_date" db:"next_review_date"`
}
