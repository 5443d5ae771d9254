package quiz

import (
	"github.com/example/vocabcoach/pkg/models"
)

// Composer assembles a quiz session from the learner's due items.
type Composer struct {
	generator *Generator
}

// NewComposer creates a Composer around the given distractor generator.
func NewComposer(generator *Generator) *Composer {
	return &Composer{generator: generator}
}

// Compose builds one question per due item, up to totalQuestions. The
// due items are expected in review order (oldest-due first) and that
// order is preserved in the output; when fewer items are due than
// requested the session is simply shorter.
//
// The difficulty plan is computed once and its buckets are walked in
// easy, medium, hard order along the due ordering, so the longest-due
// items land in the easier slots.
func (c *Composer) Compose(dueItems, pool []models.VocabularyItem, totalQuestions int, rollingAccuracy float64) ([]models.QuizQuestion, error) {
	plan, err := PlanSession(totalQuestions, rollingAccuracy)
	if err != nil {
		return nil, err
	}

	if totalQuestions < 0 {
		totalQuestions = 0
	}
	selected := dueItems
	if totalQuestions < len(selected) {
		selected = selected[:totalQuestions]
	}

	questions := make([]models.QuizQuestion, 0, len(selected))
	for i, item := range selected {
		difficulty := difficultyForSlot(plan, i)
		set := c.generator.Generate(item, pool, difficulty)
		questions = append(questions, models.QuizQuestion{
			TargetItemID:  item.ID,
			PromptWord:    item.Word,
			CorrectAnswer: set.CorrectAnswer,
			Options:       set.Options,
			Difficulty:    difficulty,
		})
	}
	return questions, nil
}

// difficultyForSlot maps a session slot index onto the plan's buckets.
func difficultyForSlot(plan models.SessionDifficultyPlan, slot int) models.Difficulty {
	switch {
	case slot < plan.EasyCount:
		return models.DifficultyEasy
	case slot < plan.EasyCount+plan.MediumCount:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}
