package biquad

import (
	"math"

	"github.com/cwbudde/algo-smooth/dsp/filter"
)

// DefaultQ is the quality factor used when none is given. It critically
// damps the filter, trading a softer knee for a step response without
// overshoot.
const DefaultQ = 0.5

// Coefficients holds the transfer function coefficients of a single
// second-order section. a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form I:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Lowpass designs a low-pass biquad at fcHz with quality factor q via the
// bilinear transform. With k = tan(pi*fc/fs) and denom = k^2 + k/q + 1:
//
//	B0 = B2 = k^2/denom, B1 = 2*B0
//	A1 = 2*(k^2-1)/denom, A2 = (k^2 - k/q + 1)/denom
//
// The result has unity DC gain: B0+B1+B2 == 1+A1+A2.
func Lowpass(fcHz, q, sampleRate float64) (Coefficients, error) {
	if err := filter.ValidateCutoff(fcHz, sampleRate); err != nil {
		return Coefficients{}, err
	}

	if err := filter.ValidateQ(q); err != nil {
		return Coefficients{}, err
	}

	k := math.Tan(math.Pi * fcHz / sampleRate)
	denom := k*k + k/q + 1
	b0 := k * k / denom

	return Coefficients{
		B0: b0,
		B1: 2 * b0,
		B2: b0,
		A1: 2 * (k*k - 1) / denom,
		A2: (k*k - k/q + 1) / denom,
	}, nil
}
