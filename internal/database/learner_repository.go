package database

import (
	"fmt"

	"github.com/example/vocabcoach/pkg/models"
)

// LearnerRepository handles database operations for learners
type LearnerRepository struct{}

// NewLearnerRepository creates a new repository instance
func NewLearnerRepository() *LearnerRepository {
	return &LearnerRepository{}
}

// GetByID returns a learner by internal ID
func (r *LearnerRepository) GetByID(id int64) (*models.Learner, error) {
	var learner models.Learner
	err := DB.Get(&learner, "SELECT * FROM learners WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get learner: %v", err)
	}
	return &learner, nil
}

// Create inserts a new learner
func (r *LearnerRepository) Create(learner *models.Learner) error {
	err := DB.QueryRow(`
		INSERT INTO learners (chat_id, tier, questions_per_session, notification_enabled, notification_hour)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		learner.ChatID,
		learner.Tier,
		learner.QuestionsPerSession,
		learner.NotificationEnabled,
		learner.NotificationHour,
	).Scan(&learner.ID)
	if err != nil {
		return fmt.Errorf("failed to create learner: %v", err)
	}
	return nil
}

// GetLearnersForNotification returns learners who want a reminder at the
// given hour of day
func (r *LearnerRepository) GetLearnersForNotification(hour int) ([]models.Learner, error) {
	var learners []models.Learner
	err := DB.Select(&learners, `
		SELECT * FROM learners
		WHERE notification_enabled = true AND notification_hour = $1
	`, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get learners for notification: %v", err)
	}
	return learners, nil
}
