// Package filter defines the shared contract of the recursive smoothing
// filters in this module.
//
// A filter produces one output per input sample and retains that output as
// state for the next call, so the recursion is order-sensitive: samples must
// be fed in temporal order. Instances are plain mutable values and are not
// safe for concurrent use from multiple goroutines; distinct instances are
// fully independent.
//
// The concrete low-pass implementations live in the onepole and biquad
// subpackages. Instead of specializing per sample type, they are
// parameterized over small capability values: a [Blend] supplies the
// interpolation rule for the one-pole update (linear for vector-space
// samples, spherical for orientations), and a [Space] supplies the
// vector-space operations the biquad recursion needs.
package filter

// Filter is the minimal contract shared by all recursive smoothing filters.
type Filter[T any] interface {
	// SetValue overwrites the retained output (and any history) with v.
	SetValue(v T)

	// Value returns the last retained output.
	Value() T

	// SetCutoff recomputes the coefficients for cutoff fcHz at sample
	// rate fsHz. Implementations with additional tuning parameters use
	// fixed defaults here and expose distinctly named variants.
	SetCutoff(fcHz, fsHz float64) error

	// Process filters one sample and returns the new output, which is
	// also retained as state for the next call.
	Process(x T) T
}

// Blend interpolates by fraction t from one value toward another.
// Implementations must satisfy Blend(0, from, to) == from and
// Blend(1, from, to) == to.
type Blend[T any] func(t float64, from, to T) T
