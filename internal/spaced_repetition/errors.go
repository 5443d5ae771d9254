package spaced_repetition

import "errors"

// Sentinel errors for the spaced_repetition package.
// Check with errors.Is.
var (
	ErrInvalidQuality        = errors.New("spaced_repetition: quality outside [0,5]")
	ErrInvalidTimingBaseline = errors.New("spaced_repetition: average response time must be positive")
)
