package spaced_repetition

// EstimateQuality converts an observed quiz answer into the 0-5 quality
// rating consumed by Advance. The rolling average response time comes
// from the learner's recent history and must be positive; non-positive
// averages return ErrInvalidTimingBaseline.
//
// A wrong answer slower than twice the average counts as a blackout
// (the learner was guessing or stuck). A correct answer is graded by
// how fast it came relative to the average.
func EstimateQuality(wasCorrect bool, responseTimeSeconds, averageResponseTimeSeconds float64) (int, error) {
	if averageResponseTimeSeconds <= 0 {
		return 0, ErrInvalidTimingBaseline
	}

	if !wasCorrect {
		if responseTimeSeconds > 2*averageResponseTimeSeconds {
			return QualityBlackout, nil
		}
		return QualityIncorrect, nil
	}

	ratio := responseTimeSeconds / averageResponseTimeSeconds
	switch {
	case ratio < 0.5:
		return QualityPerfect, nil
	case ratio < 0.8:
		return QualityCorrectHesitation, nil
	case ratio < 1.2:
		return QualityCorrectDifficult, nil
	default:
		return QualityIncorrectFamiliar, nil
	}
}
