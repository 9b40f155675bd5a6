package onepole

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of the current
// coefficients at the given frequency (Hz) and sample rate (Hz):
//
//	H(z) = gainIn / (1 - feedback*z^-1)
//
// The coefficients are scalar regardless of the sample type, so the
// response is defined for every instantiation.
func (f *Filter[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))

	return complex(f.gainIn, 0) / (complex(1, 0) - complex(f.feedback, 0)*ejw)
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (f *Filter[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
