package spaced_repetition

import (
	"math"
	"sort"
	"time"

	"github.com/example/vocabcoach/pkg/models"
)

// Base daily review capacity per learner tier.
var baseCapacity = map[models.Level]int{
	models.LevelBeginner:     10,
	models.LevelIntermediate: 15,
	models.LevelAdvanced:     20,
}

// ReviewCapacity returns the daily review cap for a learner: the tier's
// base capacity scaled with vocabulary size, up to twice the base.
// Unknown tiers get the beginner base.
func ReviewCapacity(tier models.Level, totalVocabularySize int) int {
	base, ok := baseCapacity[tier]
	if !ok {
		base = baseCapacity[models.LevelBeginner]
	}
	scale := 1 + float64(totalVocabularySize)/100
	if scale > 2 {
		scale = 2
	}
	return int(math.Round(float64(base) * scale))
}

// SelectDue returns the items due for review as of the given date,
// oldest-due first (ties broken by creation date), capped at the
// learner's review capacity. The input slice is not mutated; if fewer
// due items exist than the capacity, all of them are returned.
func SelectDue(items []models.VocabularyItem, asOf time.Time, tier models.Level, totalVocabularySize int) []models.VocabularyItem {
	due := make([]models.VocabularyItem, 0, len(items))
	for _, item := range items {
		if !item.NextReviewDate.After(asOf) {
			due = append(due, item)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].NextReviewDate.Equal(due[j].NextReviewDate) {
			return due[i].NextReviewDate.Before(due[j].NextReviewDate)
		}
		return due[i].CreatedAt.Before(due[j].CreatedAt)
	})

	capacity := ReviewCapacity(tier, totalVocabularySize)
	if len(due) > capacity {
		due = due[:capacity]
	}
	return due
}
