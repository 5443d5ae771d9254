package quiz

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabcoach/pkg/models"
)

var baseTime = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func seededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func poolItem(id, meaning, sourceID string, level models.Level, createdAt time.Time) models.VocabularyItem {
	return models.VocabularyItem{
		ID:        id,
		Word:      "word-" + id,
		Meaning:   meaning,
		SourceID:  sourceID,
		LevelTag:  level,
		CreatedAt: createdAt,
	}
}

func assertWellFormed(t *testing.T, set OptionSet, correct string) {
	t.Helper()
	require.Len(t, set.Options, 4)
	seen := map[string]int{}
	for _, opt := range set.Options {
		seen[opt]++
	}
	assert.Len(t, seen, 4, "options must be unique: %v", set.Options)
	assert.Equal(t, 1, seen[correct], "correct answer must appear exactly once")
	assert.Equal(t, correct, set.CorrectAnswer)
}

func TestGenerateWithRichPool(t *testing.T) {
	target := poolItem("t", "to wander", "book-1", models.LevelIntermediate, baseTime)
	pool := []models.VocabularyItem{
		target,
		poolItem("a", "to shimmer", "book-1", models.LevelIntermediate, baseTime),
		poolItem("b", "to crumble", "book-2", models.LevelIntermediate, baseTime.AddDate(0, 0, -3)),
		poolItem("c", "to linger", "book-2", models.LevelBeginner, baseTime.AddDate(0, 0, -5)),
		poolItem("d", "to mumble", "book-3", models.LevelAdvanced, baseTime.AddDate(0, -2, 0)),
	}

	for seed := int64(0); seed < 10; seed++ {
		set := seededGenerator(seed).Generate(target, pool, models.DifficultyMedium)
		assertWellFormed(t, set, "to wander")
		for _, opt := range set.Options {
			assert.False(t, strings.HasPrefix(opt, "Option "), "rich pool should not need placeholders: %v", set.Options)
		}
	}
}

func TestGenerateExcludesTargetAndSameMeaning(t *testing.T) {
	target := poolItem("t", "house", "", models.LevelBeginner, baseTime)
	pool := []models.VocabularyItem{
		target,
		poolItem("dup", "house", "", models.LevelBeginner, baseTime), // same meaning, different word
		poolItem("a", "garden", "", models.LevelBeginner, baseTime),
	}

	set := seededGenerator(1).Generate(target, pool, models.DifficultyEasy)
	assertWellFormed(t, set, "house")
	assert.Contains(t, set.Options, "garden")
	// "house" appears once (the correct answer); the duplicate-meaning
	// candidate contributed nothing, so two slots are placeholders.
	placeholders := 0
	for _, opt := range set.Options {
		if strings.HasPrefix(opt, "Option ") {
			placeholders++
		}
	}
	assert.Equal(t, 2, placeholders)
}

func TestGeneratePadsTinyPool(t *testing.T) {
	target := poolItem("t", "cat", "", models.LevelBeginner, baseTime)
	pool := []models.VocabularyItem{
		target,
		poolItem("a", "dog", "", models.LevelBeginner, baseTime),
	}

	set := seededGenerator(7).Generate(target, pool, models.DifficultyMedium)
	assertWellFormed(t, set, "cat")
	assert.Contains(t, set.Options, "dog")
	assert.Contains(t, set.Options, "Option 1")
	assert.Contains(t, set.Options, "Option 2")
}

func TestGenerateEmptyPool(t *testing.T) {
	target := poolItem("t", "cat", "", models.LevelBeginner, baseTime)

	set := seededGenerator(3).Generate(target, nil, models.DifficultyHard)
	assertWellFormed(t, set, "cat")
	for _, want := range []string{"Option 1", "Option 2", "Option 3"} {
		assert.Contains(t, set.Options, want)
	}
}

func TestGeneratePlaceholdersAvoidRealAnswers(t *testing.T) {
	// A learner whose meanings collide with the placeholder namespace.
	target := poolItem("t", "Option 1", "", models.LevelBeginner, baseTime)

	set := seededGenerator(5).Generate(target, nil, models.DifficultyEasy)
	assertWellFormed(t, set, "Option 1")
}

func TestGenerateDeduplicatesPoolMeanings(t *testing.T) {
	target := poolItem("t", "run", "", models.LevelBeginner, baseTime)
	pool := []models.VocabularyItem{
		target,
		poolItem("a", "sprint", "", models.LevelBeginner, baseTime),
		poolItem("b", "sprint", "", models.LevelBeginner, baseTime),
		poolItem("c", "sprint", "", models.LevelBeginner, baseTime),
	}

	for seed := int64(0); seed < 10; seed++ {
		set := seededGenerator(seed).Generate(target, pool, models.DifficultyMedium)
		assertWellFormed(t, set, "run")
	}
}

func TestGenerateAlwaysFourOptions(t *testing.T) {
	target := poolItem("t", "target meaning", "book-1", models.LevelIntermediate, baseTime)
	for size := 0; size <= 12; size++ {
		pool := []models.VocabularyItem{target}
		for i := 0; i < size; i++ {
			pool = append(pool, poolItem(
				fmt.Sprintf("p%d", i),
				fmt.Sprintf("meaning %d", i),
				"book-1",
				models.LevelIntermediate,
				baseTime.AddDate(0, 0, -i),
			))
		}
		for _, difficulty := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
			set := seededGenerator(int64(size)).Generate(target, pool, difficulty)
			assertWellFormed(t, set, "target meaning")
		}
	}
}

func TestChooseLengthBias(t *testing.T) {
	target := poolItem("t", "amble", "", models.LevelBeginner, baseTime)
	near := poolItem("near", "tromp", "", models.LevelBeginner, baseTime)
	far := poolItem("far", "a very long meaning that reads nothing alike", "", models.LevelBeginner, baseTime)
	eligible := []models.VocabularyItem{near, far}

	g := seededGenerator(0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, "near", g.choose(eligible, target, models.DifficultyHard).ID)
		assert.Equal(t, "near", g.choose(eligible, target, models.DifficultyMedium).ID)
		assert.Equal(t, "far", g.choose(eligible, target, models.DifficultyEasy).ID)
	}
}

func TestChooseFallsBackWhenNoPreferred(t *testing.T) {
	target := poolItem("t", "amble", "", models.LevelBeginner, baseTime)
	// Only a length-similar candidate available: easy still has to pick it.
	similar := poolItem("s", "strut", "", models.LevelBeginner, baseTime)

	g := seededGenerator(0)
	assert.Equal(t, "s", g.choose([]models.VocabularyItem{similar}, target, models.DifficultyEasy).ID)
}
