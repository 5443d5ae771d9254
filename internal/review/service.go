package review

import (
	"fmt"
	"time"

	"github.com/example/vocabcoach/internal/quiz"
	"github.com/example/vocabcoach/internal/spaced_repetition"
	"github.com/example/vocabcoach/pkg/models"
)

// Number of recent sessions feeding the rolling accuracy and the
// response-time baseline.
const rollingWindow = 10

// Points awarded per correct answer.
const pointsPerCorrect = 10

// VocabularyStore supplies vocabulary snapshots and persists recomputed
// scheduling state.
type VocabularyStore interface {
	GetByID(id string) (*models.VocabularyItem, error)
	GetByLearner(learnerID int64) ([]models.VocabularyItem, error)
	UpdateScheduling(item *models.VocabularyItem) error
}

// SessionStore persists session results and answers the rolling
// accuracy and timing-history queries.
type SessionStore interface {
	Create(result *models.SessionResult) error
	RollingAccuracy(learnerID int64, window int) (float64, error)
	AverageResponseTime(learnerID int64, window int) (float64, error)
}

// ProgressionStore is the points/streak ledger.
type ProgressionStore interface {
	Get(learnerID int64) (models.ProgressionState, error)
	Upsert(state *models.ProgressionState) error
}

// Service wires the review engine to its collaborators: it builds quiz
// sessions from due items, applies review outcomes to scheduling state,
// and settles finished sessions into the history and the ledger.
type Service struct {
	sm2      *spaced_repetition.SM2
	composer *quiz.Composer
	vocab    VocabularyStore
	sessions SessionStore
	ledger   ProgressionStore
}

// NewService creates a review service around the given stores.
func NewService(composer *quiz.Composer, vocab VocabularyStore, sessions SessionStore, ledger ProgressionStore) *Service {
	return &Service{
		sm2:      spaced_repetition.NewSM2(),
		composer: composer,
		vocab:    vocab,
		sessions: sessions,
		ledger:   ledger,
	}
}

// BuildSession assembles today's quiz for a learner: snapshot the
// vocabulary, select the due set for the learner's tier, and compose
// questions adapted to recent accuracy.
func (s *Service) BuildSession(learner models.Learner, now time.Time) ([]models.QuizQuestion, error) {
	items, err := s.vocab.GetByLearner(learner.ID)
	if err != nil {
		return nil, err
	}

	due := spaced_repetition.SelectDue(items, now, learner.Tier, len(items))
	if len(due) == 0 {
		return nil, nil
	}

	accuracy, err := s.sessions.RollingAccuracy(learner.ID, rollingWindow)
	if err != nil {
		return nil, err
	}
	// The store can only produce ratios, but clamp anyway so a bad
	// value degrades the plan instead of failing the session.
	if accuracy < 0 {
		accuracy = 0
	} else if accuracy > 1 {
		accuracy = 1
	}

	return s.composer.Compose(due, items, learner.QuestionsPerSession, accuracy)
}

// ProcessOutcome applies one quiz answer to the item's scheduling state
// and persists the result. Outcomes for the same item must be processed
// one at a time; each transition depends on the previous state.
func (s *Service) ProcessOutcome(learnerID int64, outcome models.ReviewOutcome) (*models.VocabularyItem, error) {
	item, err := s.vocab.GetByID(outcome.ItemID)
	if err != nil {
		return nil, err
	}

	baseline, err := s.sessions.AverageResponseTime(learnerID, rollingWindow)
	if err != nil {
		return nil, err
	}

	quality, err := spaced_repetition.EstimateQuality(outcome.WasCorrect, outcome.ResponseTimeSeconds, baseline)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate quality: %w", err)
	}

	state, err := s.sm2.Advance(spaced_repetition.State{
		Repetitions:  item.Repetitions,
		IntervalDays: item.IntervalDays,
		EaseFactor:   item.EaseFactor,
	}, quality, outcome.AnsweredAt)
	if err != nil {
		return nil, err
	}

	item.Repetitions = state.Repetitions
	item.IntervalDays = state.IntervalDays
	item.EaseFactor = state.EaseFactor
	item.NextReviewDate = state.NextReviewDate

	if err := s.vocab.UpdateScheduling(item); err != nil {
		return nil, err
	}
	return item, nil
}

// FinishSession aggregates a session's outcomes into a persisted result
// and settles points and streak. Returns the updated ledger state.
func (s *Service) FinishSession(learnerID int64, outcomes []models.ReviewOutcome, now time.Time) (models.ProgressionState, error) {
	if len(outcomes) == 0 {
		return s.ledger.Get(learnerID)
	}

	correct := 0
	var totalSeconds float64
	for _, o := range outcomes {
		if o.WasCorrect {
			correct++
		}
		totalSeconds += o.ResponseTimeSeconds
	}

	result := &models.SessionResult{
		LearnerID:           learnerID,
		TotalQuestions:      len(outcomes),
		CorrectAnswers:      correct,
		MeanResponseSeconds: totalSeconds / float64(len(outcomes)),
		CompletedAt:         now,
	}
	if err := s.sessions.Create(result); err != nil {
		return models.ProgressionState{}, err
	}

	state, err := s.ledger.Get(learnerID)
	if err != nil {
		return models.ProgressionState{}, err
	}

	state.TotalPoints += correct * pointsPerCorrect
	state.CurrentStreakDays = nextStreak(state, now)
	state.LastActivityDate = now

	if err := s.ledger.Upsert(&state); err != nil {
		return models.ProgressionState{}, err
	}
	return state, nil
}

// nextStreak continues the daily streak when the previous activity was
// yesterday, keeps it for a second session today, and restarts otherwise.
func nextStreak(state models.ProgressionState, now time.Time) int {
	if state.LastActivityDate.IsZero() {
		return 1
	}
	last := dateOnly(state.LastActivityDate)
	today := dateOnly(now)
	switch {
	case last.Equal(today):
		if state.CurrentStreakDays == 0 {
			return 1
		}
		return state.CurrentStreakDays
	case last.AddDate(0, 0, 1).Equal(today):
		return state.CurrentStreakDays + 1
	default:
		return 1
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
