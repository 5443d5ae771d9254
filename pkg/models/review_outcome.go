package models

import "time"

// ReviewOutcome is the result of one quiz answer against one item.
// It is produced by the quiz-taking surface and consumed once when the
// item's scheduling state is recomputed; it is never persisted.
type ReviewOutcome struct {
	ItemID              string    `json:"item_id"`
	WasCorrect          bool      `json:"was_correct"`
	ResponseTimeSeconds float64   `json:"response_time_seconds"`
	AnsweredAt          time.Time `json:"answered_at"`
}
