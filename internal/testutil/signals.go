package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
)

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// DeterministicSine generates a sine wave with zero initial phase.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// RandomUnitQuaternions generates unit-norm quaternions with a fixed seed,
// uniformly distributed over rotation space (Marsaglia's method).
func RandomUnitQuaternions(seed int64, count int) []quat.Number {
	out := make([]quat.Number, count)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		u1 := rng.Float64()
		u2 := rng.Float64() * 2 * math.Pi
		u3 := rng.Float64() * 2 * math.Pi

		s1 := math.Sqrt(1 - u1)
		s2 := math.Sqrt(u1)

		out[i] = quat.Number{
			Real: s1 * math.Sin(u2),
			Imag: s1 * math.Cos(u2),
			Jmag: s2 * math.Sin(u3),
			Kmag: s2 * math.Cos(u3),
		}
	}

	return out
}
