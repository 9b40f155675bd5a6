package filter

import (
	"errors"
	"math"
)

// Validation errors shared by the coefficient designs in the subpackages.
var (
	ErrInvalidSampleRate  = errors.New("filter: sample rate must be positive and finite")
	ErrInvalidCutoff      = errors.New("filter: cutoff must be positive and finite")
	ErrCutoffAboveNyquist = errors.New("filter: cutoff must be below half the sample rate")
	ErrInvalidQ           = errors.New("filter: Q must be positive and finite")
	ErrLengthMismatch     = errors.New("filter: destination and source lengths differ")
)

// ValidateCutoff checks a cutoff/sample-rate pair (Hz). It rejects
// non-positive or non-finite values and cutoffs at or above the Nyquist
// limit, all of which would yield degenerate or unstable coefficients.
func ValidateCutoff(fcHz, fsHz float64) error {
	if fsHz <= 0 || math.IsNaN(fsHz) || math.IsInf(fsHz, 0) {
		return ErrInvalidSampleRate
	}

	if fcHz <= 0 || math.IsNaN(fcHz) || math.IsInf(fcHz, 0) {
		return ErrInvalidCutoff
	}

	if fcHz >= fsHz/2 {
		return ErrCutoffAboveNyquist
	}

	return nil
}

// ValidateQ checks a quality factor.
func ValidateQ(q float64) error {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return ErrInvalidQ
	}

	return nil
}
