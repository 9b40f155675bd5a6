package biquad

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/golang/geo/r3"
)

// Filter is a second-order recursive low-pass filter over a vector-space
// sample type. The embedded Coefficients may be set directly for custom
// designs; the SetCutoff methods fill them via [Lowpass].
//
// A bare filter has zero coefficients and produces only zero output until
// configured.
type Filter[T any] struct {
	Coefficients

	space filter.Space[T]

	y0, y1, y2 T
	x1, x2     T
}

// State captures the retained output and history of a filter.
type State[T any] struct {
	Y0, Y1, Y2 T
	X1, X2     T
}

// New returns an unconfigured filter over the given space.
func New[T any](space filter.Space[T]) *Filter[T] {
	return &Filter[T]{space: space}
}

// NewWithCutoff returns a filter configured for the given cutoff and sample
// rate (Hz) with the critically damped default Q.
func NewWithCutoff[T any](space filter.Space[T], fcHz, fsHz float64) (*Filter[T], error) {
	return NewWithCutoffQ(space, fcHz, fsHz, DefaultQ)
}

// NewWithCutoffQ returns a filter configured for the given cutoff, sample
// rate (Hz) and quality factor.
func NewWithCutoffQ[T any](space filter.Space[T], fcHz, fsHz, q float64) (*Filter[T], error) {
	f := New(space)
	if err := f.SetCutoffWithQ(fcHz, fsHz, q); err != nil {
		return nil, err
	}

	return f, nil
}

// NewScalar returns a configured filter for float64 samples.
func NewScalar(fcHz, fsHz float64) (*Filter[float64], error) {
	return NewWithCutoff[float64](filter.ScalarSpace{}, fcHz, fsHz)
}

// NewVector3 returns a configured filter for 3-vector samples, seeded with
// the zero vector.
func NewVector3(fcHz, fsHz float64) (*Filter[r3.Vector], error) {
	return NewWithCutoff[r3.Vector](filter.Vector3Space{}, fcHz, fsHz)
}

// SetCutoff recomputes the coefficients for cutoff fcHz at sample rate fsHz
// using the critically damped default Q.
func (f *Filter[T]) SetCutoff(fcHz, fsHz float64) error {
	return f.SetCutoffWithQ(fcHz, fsHz, DefaultQ)
}

// SetCutoffWithQ recomputes the coefficients for cutoff fcHz at sample rate
// fsHz with quality factor q. On error the previous coefficients are kept.
func (f *Filter[T]) SetCutoffWithQ(fcHz, fsHz, q float64) error {
	c, err := Lowpass(fcHz, q, fsHz)
	if err != nil {
		return err
	}

	f.Coefficients = c

	return nil
}

// Process filters one sample and returns the new output.
func (f *Filter[T]) Process(x T) T {
	s := f.space

	y := s.Add(s.Scale(f.B0, x), s.Scale(f.B1, f.x1))
	y = s.Add(y, s.Scale(f.B2, f.x2))
	y = s.Add(y, s.Scale(-f.A1, f.y1))
	y = s.Add(y, s.Scale(-f.A2, f.y2))

	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	f.y0 = y

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = f.Process(x)
	}
}

// ProcessBlockTo filters src into dst without touching src. The slices must
// have equal length and may alias.
func (f *Filter[T]) ProcessBlockTo(dst, src []T) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d vs %d", filter.ErrLengthMismatch, len(dst), len(src))
	}

	for i, x := range src {
		dst[i] = f.Process(x)
	}

	return nil
}

// SetValue resets the output and the full input/output history to v. The
// next Process call then behaves as if the filter had settled on v: thanks
// to unity DC gain, Process(v) returns v.
func (f *Filter[T]) SetValue(v T) {
	f.y0, f.y1, f.y2 = v, v, v
	f.x1, f.x2 = v, v
}

// Value returns the last retained output.
func (f *Filter[T]) Value() T {
	return f.y0
}

// State returns the current retained output and history.
func (f *Filter[T]) State() State[T] {
	return State[T]{Y0: f.y0, Y1: f.y1, Y2: f.y2, X1: f.x1, X2: f.x2}
}

// SetState restores a previously saved state.
func (f *Filter[T]) SetState(st State[T]) {
	f.y0, f.y1, f.y2 = st.Y0, st.Y1, st.Y2
	f.x1, f.x2 = st.X1, st.X2
}
