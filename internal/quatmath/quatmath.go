// Package quatmath provides the small amount of quaternion algebra the
// orientation filters need on top of gonum's quat.Number.
package quatmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Below this angle (radians) between two quaternions, Slerp falls back to
// normalized linear interpolation to avoid dividing by a vanishing sine.
const nlerpThreshold = 1e-8

// Identity returns the identity rotation.
func Identity() quat.Number {
	return quat.Number{Real: 1}
}

// Dot returns the four-dimensional dot product of a and b.
func Dot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// Norm returns the Euclidean norm of q.
func Norm(q quat.Number) float64 {
	return math.Sqrt(Dot(q, q))
}

// Normalize returns q scaled to unit norm. The zero quaternion is returned
// unchanged.
func Normalize(q quat.Number) quat.Number {
	n := Norm(q)
	if n == 0 {
		return q
	}

	return scale(1/n, q)
}

// Slerp spherically interpolates by fraction t from one unit quaternion
// toward another along the shortest great-circle arc. The result has unit
// norm for unit-norm inputs.
func Slerp(t float64, from, to quat.Number) quat.Number {
	d := Dot(from, to)

	// q and -q represent the same rotation; flip so the interpolation
	// takes the short way round.
	if d < 0 {
		to = scale(-1, to)
		d = -d
	}

	if d > 1 {
		d = 1
	}

	theta := math.Acos(d)
	if theta < nlerpThreshold {
		return Normalize(add(scale(1-t, from), scale(t, to)))
	}

	sinTheta := math.Sin(theta)
	wf := math.Sin((1-t)*theta) / sinTheta
	wt := math.Sin(t*theta) / sinTheta

	return add(scale(wf, from), scale(wt, to))
}

func scale(k float64, q quat.Number) quat.Number {
	return quat.Number{Real: k * q.Real, Imag: k * q.Imag, Jmag: k * q.Jmag, Kmag: k * q.Kmag}
}

func add(a, b quat.Number) quat.Number {
	return quat.Number{
		Real: a.Real + b.Real,
		Imag: a.Imag + b.Imag,
		Jmag: a.Jmag + b.Jmag,
		Kmag: a.Kmag + b.Kmag,
	}
}
