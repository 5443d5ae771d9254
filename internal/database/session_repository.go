package database

import (
	"fmt"

	"github.com/example/vocabcoach/pkg/models"
)

// DefaultResponseSeconds is the timing baseline used for learners with
// no recorded sessions yet.
const DefaultResponseSeconds = 10.0

// SessionRepository handles database operations for quiz session results
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Create inserts a new session result
func (r *SessionRepository) Create(result *models.SessionResult) error {
	_, err := DB.Exec(`
		INSERT INTO session_results (
			learner_id, total_questions, correct_answers, mean_response_seconds, completed_at
		) VALUES ($1, $2, $3, $4, $5)
	`,
		result.LearnerID,
		result.TotalQuestions,
		result.CorrectAnswers,
		result.MeanResponseSeconds,
		result.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session result: %v", err)
	}
	return nil
}

// RollingAccuracy returns the correctness ratio over the learner's most
// recent sessions. Learners with no history get a neutral 0.5.
func (r *SessionRepository) RollingAccuracy(learnerID int64, window int) (float64, error) {
	var totals struct {
		Correct int `db:"correct"`
		Total   int `db:"total"`
	}
	err := DB.Get(&totals, `
		SELECT COALESCE(SUM(correct_answers), 0) AS correct,
		       COALESCE(SUM(total_questions), 0) AS total
		FROM (
			SELECT correct_answers, total_questions
			FROM session_results
			WHERE learner_id = $1
			ORDER BY completed_at DESC
			LIMIT $2
		) recent
	`, learnerID, window)
	if err != nil {
		return 0, fmt.Errorf("failed to get rolling accuracy: %v", err)
	}
	if totals.Total == 0 {
		return 0.5, nil
	}
	return float64(totals.Correct) / float64(totals.Total), nil
}

// AverageResponseTime returns the mean response time in seconds over the
// learner's most recent sessions, weighted by question count. Learners
// with no history get DefaultResponseSeconds so the quality estimator
// always has a positive baseline.
func (r *SessionRepository) AverageResponseTime(learnerID int64, window int) (float64, error) {
	var totals struct {
		Seconds float64 `db:"seconds"`
		Total   int     `db:"total"`
	}
	err := DB.Get(&totals, `
		SELECT COALESCE(SUM(mean_response_seconds * total_questions), 0) AS seconds,
		       COALESCE(SUM(total_questions), 0) AS total
		FROM (
			SELECT mean_response_seconds, total_questions
			FROM session_results
			WHERE learner_id = $1
			ORDER BY completed_at DESC
			LIMIT $2
		) recent
	`, learnerID, window)
	if err != nil {
		return 0, fmt.Errorf("failed to get average response time: %v", err)
	}
	if totals.Total == 0 {
		return DefaultResponseSeconds, nil
	}
	return totals.Seconds / float64(totals.Total), nil
}
