package filter

import "github.com/golang/geo/r3"

// Space describes the vector-space operations a linear recursion needs:
// addition, scalar multiplication and a zero element.
type Space[T any] interface {
	Add(a, b T) T
	Scale(k float64, v T) T
	Zero() T
}

// ScalarSpace is the Space of float64 samples.
type ScalarSpace struct{}

// Add returns a + b.
func (ScalarSpace) Add(a, b float64) float64 { return a + b }

// Scale returns k * v.
func (ScalarSpace) Scale(k, v float64) float64 { return k * v }

// Zero returns 0.
func (ScalarSpace) Zero() float64 { return 0 }

// Vector3Space is the Space of 3D vectors.
type Vector3Space struct{}

// Add returns the component-wise sum a + b.
func (Vector3Space) Add(a, b r3.Vector) r3.Vector { return a.Add(b) }

// Scale returns v scaled by k.
func (Vector3Space) Scale(k float64, v r3.Vector) r3.Vector { return v.Mul(k) }

// Zero returns the zero vector.
func (Vector3Space) Zero() r3.Vector { return r3.Vector{} }

// Lerp returns the linear blend induced by a vector space:
//
//	Lerp(s)(t, from, to) = (1-t)*from + t*to
func Lerp[T any](s Space[T]) Blend[T] {
	return func(t float64, from, to T) T {
		return s.Add(s.Scale(1-t, from), s.Scale(t, to))
	}
}
