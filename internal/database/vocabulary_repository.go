package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/vocabcoach/pkg/models"
)

// VocabularyRepository handles database operations for vocabulary items
type VocabularyRepository struct{}

// NewVocabularyRepository creates a new repository instance
func NewVocabularyRepository() *VocabularyRepository {
	return &VocabularyRepository{}
}

// GetByID returns a single vocabulary item
func (r *VocabularyRepository) GetByID(id string) (*models.VocabularyItem, error) {
	var item models.VocabularyItem
	err := DB.Get(&item, "SELECT * FROM vocabulary_items WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vocabulary item: %v", err)
	}
	return &item, nil
}

// GetByLearner returns the full vocabulary snapshot for a learner
func (r *VocabularyRepository) GetByLearner(learnerID int64) ([]models.VocabularyItem, error) {
	var items []models.VocabularyItem
	err := DB.Select(&items, "SELECT * FROM vocabulary_items WHERE learner_id = $1", learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vocabulary items: %v", err)
	}
	return items, nil
}

// GetByLearnerAndWord returns a learner's record for a specific word, if any
func (r *VocabularyRepository) GetByLearnerAndWord(learnerID int64, word string) (*models.VocabularyItem, error) {
	var item models.VocabularyItem
	err := DB.Get(&item, "SELECT * FROM vocabulary_items WHERE learner_id = $1 AND word = $2", learnerID, word)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CountByLearner returns the size of a learner's vocabulary
func (r *VocabularyRepository) CountByLearner(learnerID int64) (int, error) {
	var count int
	err := DB.Get(&count, "SELECT COUNT(*) FROM vocabulary_items WHERE learner_id = $1", learnerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count vocabulary items: %v", err)
	}
	return count, nil
}

// Create inserts a new vocabulary item, assigning an ID if missing
func (r *VocabularyRepository) Create(item *models.VocabularyItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	_, err := DB.Exec(`
		INSERT INTO vocabulary_items (
			id, learner_id, word, meaning, source_id, level_tag, created_at,
			ease_factor, interval_days, repetitions, next_review_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		item.ID,
		item.LearnerID,
		item.Word,
		item.Meaning,
		item.SourceID,
		item.LevelTag,
		item.CreatedAt,
		item.EaseFactor,
		item.IntervalDays,
		item.Repetitions,
		item.NextReviewDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary item: %v", err)
	}
	return nil
}

// UpdateScheduling persists the scheduling fields recomputed after a
// review outcome. Only those four fields are mutable after creation.
func (r *VocabularyRepository) UpdateScheduling(item *models.VocabularyItem) error {
	_, err := DB.Exec(`
		UPDATE vocabulary_items SET
			ease_factor = $1,
			interval_days = $2,
			repetitions = $3,
			next_review_date = $4
		WHERE id = $5
	`,
		item.EaseFactor,
		item.IntervalDays,
		item.Repetitions,
		item.NextReviewDate,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update scheduling state: %v", err)
	}
	return nil
}

// Delete removes a vocabulary item
func (r *VocabularyRepository) Delete(id string) error {
	_, err := DB.Exec("DELETE FROM vocabulary_items WHERE id = $1", id)
	return err
}
