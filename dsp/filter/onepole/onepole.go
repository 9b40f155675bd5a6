package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/internal/quatmath"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Filter is a first-order recursive low-pass filter. A bare filter has both
// gains at zero and returns its seed value from Process until SetCutoff is
// called.
type Filter[T any] struct {
	blend    filter.Blend[T]
	gainIn   float64
	feedback float64
	y0       T
}

// New returns an unconfigured filter using the given blend. The history
// seeds at T's zero value, which is wrong for sample types where the neutral
// element is not zero: orientation filters must be seeded with the identity
// rotation, as [NewQuaternion] does, or via an explicit SetValue.
func New[T any](blend filter.Blend[T]) *Filter[T] {
	return &Filter[T]{blend: blend}
}

// NewWithCutoff returns a filter configured for the given cutoff and sample
// rate (Hz).
func NewWithCutoff[T any](blend filter.Blend[T], fcHz, fsHz float64) (*Filter[T], error) {
	f := New(blend)
	if err := f.SetCutoff(fcHz, fsHz); err != nil {
		return nil, err
	}

	return f, nil
}

// NewScalar returns a configured filter for float64 samples.
func NewScalar(fcHz, fsHz float64) (*Filter[float64], error) {
	return NewWithCutoff(filter.Lerp[float64](filter.ScalarSpace{}), fcHz, fsHz)
}

// NewVector3 returns a configured filter for 3-vector samples, seeded with
// the zero vector.
func NewVector3(fcHz, fsHz float64) (*Filter[r3.Vector], error) {
	return NewWithCutoff(filter.Lerp[r3.Vector](filter.Vector3Space{}), fcHz, fsHz)
}

// NewQuaternion returns a configured filter for orientation samples, seeded
// with the identity rotation. Samples are blended by spherical
// interpolation, so outputs stay unit-norm for unit-norm inputs.
func NewQuaternion(fcHz, fsHz float64) (*Filter[quat.Number], error) {
	f, err := NewWithCutoff[quat.Number](quatmath.Slerp, fcHz, fsHz)
	if err != nil {
		return nil, err
	}

	f.SetValue(quatmath.Identity())

	return f, nil
}

// SetCutoff recomputes the coefficients for cutoff fcHz at sample rate fsHz
// by mapping the analog RC pole to discrete time:
//
//	feedback = exp(-2*pi*fc/fs)
//	gainIn   = 1 - feedback
//
// The gains always sum to one (unity DC gain). On error the previous
// coefficients are kept.
func (f *Filter[T]) SetCutoff(fcHz, fsHz float64) error {
	if err := filter.ValidateCutoff(fcHz, fsHz); err != nil {
		return err
	}

	f.feedback = math.Exp(-2 * math.Pi * fcHz / fsHz)
	f.gainIn = 1 - f.feedback

	return nil
}

// Process filters one sample and returns the new output.
func (f *Filter[T]) Process(x T) T {
	f.y0 = f.blend(f.gainIn, f.y0, x)
	return f.y0
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		f.y0 = f.blend(f.gainIn, f.y0, x)
		buf[i] = f.y0
	}
}

// ProcessBlockTo filters src into dst without touching src. The slices must
// have equal length and may alias.
func (f *Filter[T]) ProcessBlockTo(dst, src []T) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d vs %d", filter.ErrLengthMismatch, len(dst), len(src))
	}

	for i, x := range src {
		f.y0 = f.blend(f.gainIn, f.y0, x)
		dst[i] = f.y0
	}

	return nil
}

// SetValue resets the retained output to v.
func (f *Filter[T]) SetValue(v T) {
	f.y0 = v
}

// Value returns the last retained output.
func (f *Filter[T]) Value() T {
	return f.y0
}

// Gains returns the input gain and feedback gain.
func (f *Filter[T]) Gains() (gainIn, feedback float64) {
	return f.gainIn, f.feedback
}
