package models

import "time"

// SessionResult is the persisted aggregate of one finished quiz session.
// Recent results are the source of the rolling accuracy and the rolling
// average response time consumed by the engine.
type SessionResult struct {
	ID                  int64     `json:"id" db:"id"`
	LearnerID           int64     `json:"learner_id" db:"learner_id"`
	TotalQuestions      int       `json:"total_questions" db:"total_questions"`
	CorrectAnswers      int       `json:"correct_answers" db:"correct_answers"`
	MeanResponseSeconds float64   `json:"mean_response_seconds" db:"mean_response_seconds"`
	CompletedAt         time.Time `json:"completed_at" db:"completed_at"`
}
