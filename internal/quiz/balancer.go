package quiz

import (
	"errors"
	"math"

	"github.com/example/vocabcoach/pkg/models"
)

// ErrInvalidAccuracy is returned when a rolling accuracy outside [0,1]
// is passed to PlanSession. Callers should clamp rather than propagate.
var ErrInvalidAccuracy = errors.New("quiz: rolling accuracy outside [0,1]")

// Difficulty mix per rolling-accuracy band: easy, medium, hard shares.
// Struggling learners get mostly easy questions, strong ones mostly hard.
var difficultyBands = []struct {
	minAccuracy float64
	easy, hard  float64
}{
	{0.75, 0.20, 0.50},
	{0.50, 0.30, 0.20},
	{0.00, 0.60, 0.10},
}

// PlanSession decides how many easy/medium/hard questions a session of
// the given size should contain, based on the learner's recent accuracy.
// Shares are applied by rounding; whatever remainder is left lands in
// the medium bucket so the counts always sum to totalQuestions. A
// non-positive totalQuestions yields an empty plan.
func PlanSession(totalQuestions int, rollingAccuracy float64) (models.SessionDifficultyPlan, error) {
	if rollingAccuracy < 0 || rollingAccuracy > 1 {
		return models.SessionDifficultyPlan{}, ErrInvalidAccuracy
	}
	if totalQuestions <= 0 {
		return models.SessionDifficultyPlan{}, nil
	}

	var easyShare, hardShare float64
	for _, band := range difficultyBands {
		if rollingAccuracy >= band.minAccuracy {
			easyShare, hardShare = band.easy, band.hard
			break
		}
	}

	easy := int(math.Round(float64(totalQuestions) * easyShare))
	hard := int(math.Round(float64(totalQuestions) * hardShare))
	return models.SessionDifficultyPlan{
		EasyCount:   easy,
		MediumCount: totalQuestions - easy - hard,
		HardCount:   hard,
	}, nil
}
