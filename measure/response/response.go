// Package response measures the empirical frequency response of a
// configured scalar filter.
//
// The filter packages expose analytic response helpers that evaluate the
// transfer function from the coefficients. This package instead drives the
// filter with a unit impulse and transforms the observed output, which
// validates the recursion as implemented, history handling included, and
// works for any filter honoring the shared contract.
package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response measurement.
var (
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive and finite")
	ErrFFTSizeTooSmall   = errors.New("response: fft size must be at least 2")
)

// Point is one bin of a measured magnitude response.
type Point struct {
	FreqHz      float64
	MagnitudeDB float64
}

// Magnitude estimates the magnitude response of a scalar filter by feeding
// it a unit impulse and transforming the first fftSize output samples. It
// returns one point per bin from DC up to and including Nyquist.
//
// The estimate truncates the impulse response at fftSize samples, so
// fftSize must be large relative to the filter's settling time for the
// result to match the analytic response closely.
//
// The filter's retained state is overwritten: it is reset to zero before
// the impulse is applied.
func Magnitude(f filter.Filter[float64], fftSize int, sampleRate float64) ([]Point, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	if fftSize < 2 {
		return nil, ErrFFTSizeTooSmall
	}

	in := make([]complex128, fftSize)

	f.SetValue(0)
	in[0] = complex(f.Process(1), 0)

	for i := 1; i < fftSize; i++ {
		in[i] = complex(f.Process(0), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	binHz := sampleRate / float64(fftSize)
	points := make([]Point, bins)

	for i, m := range mag {
		points[i] = Point{
			FreqHz:      float64(i) * binHz,
			MagnitudeDB: core.LinearToDB(m),
		}
	}

	return points, nil
}
