package spaced_repetition

import (
	"math"
	"time"
)

// State is the scheduling state of one vocabulary item. Advance returns
// a new State; the caller persists it.
type State struct {
	Repetitions    int
	IntervalDays   int
	EaseFactor     float64
	NextReviewDate time.Time
}

// SM2 implements the SuperMemo-2 algorithm for spaced repetition.
type SM2 struct {
	// Quality values at or above this count as "remembered"
	PassThreshold int
	// Floor for the easiness factor
	MinEaseFactor float64
}

// NewSM2 creates a new SM2 instance with the standard settings.
func NewSM2() *SM2 {
	return &SM2{
		PassThreshold: 3,
		MinEaseFactor: 1.3,
	}
}

// Quality ratings in SM-2.
const (
	// Complete blackout, unable to recall
	QualityBlackout = 0
	// Incorrect response but remembered upon seeing the correct answer
	QualityIncorrect = 1
	// Incorrect response but the correct answer felt familiar
	QualityIncorrectFamiliar = 2
	// Correct response but required significant effort
	QualityCorrectDifficult = 3
	// Correct response after some hesitation
	QualityCorrectHesitation = 4
	// Perfect response with no hesitation
	QualityPerfect = 5
)

// Advance applies one review outcome to the item's scheduling state and
// returns the new state. The input state is not mutated. Quality must be
// an integer in [0,5]; anything else returns ErrInvalidQuality.
func (sm *SM2) Advance(state State, quality int, now time.Time) (State, error) {
	if quality < QualityBlackout || quality > QualityPerfect {
		return State{}, ErrInvalidQuality
	}

	// The easiness factor is updated from the previous EF for every
	// quality value, before the remembered/forgotten branch.
	q := float64(quality)
	ease := state.EaseFactor + (0.1 - (5.0-q)*(0.08+(5.0-q)*0.02))
	if ease < sm.MinEaseFactor {
		ease = sm.MinEaseFactor
	}

	next := State{EaseFactor: ease}

	if quality < sm.PassThreshold {
		// Forgotten: reset the repetition run and review again tomorrow.
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions = state.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			// The multiplier uses the previous interval, clamped to at
			// least one day so a bad stored value cannot collapse the
			// schedule to zero.
			prev := state.IntervalDays
			if prev < 1 {
				prev = 1
			}
			next.IntervalDays = int(math.Round(float64(prev) * ease))
		}
	}

	next.NextReviewDate = now.AddDate(0, 0, next.IntervalDays)
	return next, nil
}
