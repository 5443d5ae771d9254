package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/vocabcoach/pkg/models"
)

// ProgressionRepository handles database operations for the points and
// streak ledger
type ProgressionRepository struct{}

// NewProgressionRepository creates a new repository instance
func NewProgressionRepository() *ProgressionRepository {
	return &ProgressionRepository{}
}

// Get returns the ledger state for a learner. A learner with no ledger
// row yet gets a zero state.
func (r *ProgressionRepository) Get(learnerID int64) (models.ProgressionState, error) {
	var state models.ProgressionState
	err := DB.Get(&state, "SELECT * FROM progression WHERE learner_id = $1", learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProgressionState{LearnerID: learnerID}, nil
	}
	if err != nil {
		return models.ProgressionState{}, fmt.Errorf("failed to get progression: %v", err)
	}
	return state, nil
}

// Upsert creates or replaces the ledger state for a learner
func (r *ProgressionRepository) Upsert(state *models.ProgressionState) error {
	_, err := DB.Exec(`
		INSERT INTO progression (learner_id, total_points, current_streak_days, last_activity_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (learner_id) DO UPDATE SET
			total_points = EXCLUDED.total_points,
			current_streak_days = EXCLUDED.current_streak_days,
			last_activity_date = EXCLUDED.last_activity_date
	`,
		state.LearnerID,
		state.TotalPoints,
		state.CurrentStreakDays,
		state.LastActivityDate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert progression: %v", err)
	}
	return nil
}
