package spaced_repetition

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/vocabcoach/pkg/models"
)

func dueItem(id string, nextReview, createdAt time.Time) models.VocabularyItem {
	return models.VocabularyItem{
		ID:             id,
		Meaning:        "meaning " + id,
		NextReviewDate: nextReview,
		CreatedAt:      createdAt,
	}
}

func TestReviewCapacity(t *testing.T) {
	tests := []struct {
		tier      models.Level
		vocabSize int
		want      int
	}{
		{models.LevelBeginner, 0, 10},
		{models.LevelBeginner, 100, 20},
		{models.LevelBeginner, 500, 20}, // scale clamped at 2×
		{models.LevelIntermediate, 0, 15},
		{models.LevelIntermediate, 50, 23}, // 15 × 1.5 rounded
		{models.LevelAdvanced, 0, 20},
		{models.LevelAdvanced, 300, 40},
		{models.Level("unknown"), 0, 10}, // falls back to beginner base
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.tier, tt.vocabSize), func(t *testing.T) {
			assert.Equal(t, tt.want, ReviewCapacity(tt.tier, tt.vocabSize))
		})
	}
}

func TestSelectDueFiltersAndOrders(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	created := asOf.AddDate(0, -1, 0)

	items := []models.VocabularyItem{
		dueItem("future", asOf.AddDate(0, 0, 3), created),
		dueItem("overdue", asOf.AddDate(0, 0, -5), created),
		dueItem("today", asOf, created),
		dueItem("yesterday", asOf.AddDate(0, 0, -1), created),
	}

	due := SelectDue(items, asOf, models.LevelBeginner, len(items))

	ids := make([]string, 0, len(due))
	for _, item := range due {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"overdue", "yesterday", "today"}, ids)
	for _, item := range due {
		assert.False(t, item.NextReviewDate.After(asOf))
	}
}

func TestSelectDueBreaksTiesByCreationDate(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	reviewDate := asOf.AddDate(0, 0, -2)

	items := []models.VocabularyItem{
		dueItem("newer", reviewDate, asOf.AddDate(0, 0, -10)),
		dueItem("older", reviewDate, asOf.AddDate(0, 0, -60)),
	}

	due := SelectDue(items, asOf, models.LevelBeginner, len(items))
	assert.Equal(t, "older", due[0].ID)
	assert.Equal(t, "newer", due[1].ID)
}

func TestSelectDueCapsAtCapacity(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	items := make([]models.VocabularyItem, 0, 50)
	for i := 0; i < 50; i++ {
		items = append(items, dueItem(fmt.Sprintf("item-%02d", i), asOf.AddDate(0, 0, -i), asOf.AddDate(0, -2, 0)))
	}

	due := SelectDue(items, asOf, models.LevelBeginner, len(items))
	// beginner base 10 × min(1 + 50/100, 2) = 15
	assert.Len(t, due, 15)
	// Most overdue first
	assert.Equal(t, "item-49", due[0].ID)
}

func TestSelectDueReturnsAllWhenUnderCapacity(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []models.VocabularyItem{
		dueItem("a", asOf.AddDate(0, 0, -1), asOf.AddDate(0, -1, 0)),
		dueItem("b", asOf.AddDate(0, 0, -2), asOf.AddDate(0, -1, 0)),
	}

	due := SelectDue(items, asOf, models.LevelAdvanced, len(items))
	assert.Len(t, due, 2)
}

func TestSelectDueDoesNotMutateInput(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []models.VocabularyItem{
		dueItem("b", asOf.AddDate(0, 0, -1), asOf),
		dueItem("a", asOf.AddDate(0, 0, -2), asOf),
	}

	SelectDue(items, asOf, models.LevelBeginner, len(items))
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}
