// Package onepole provides a first-order recursive low-pass filter over
// arbitrary sample types.
//
// The update rule is a single blend per sample:
//
//	y[n] = blend(gainIn, y[n-1], x[n])
//
// where the blend is supplied at construction. For vector-space samples
// (scalars, 3-vectors) a linear blend makes this the classic exponential
// smoother y[n] = gainIn*x[n] + feedback*y[n-1]. For orientations the blend
// is spherical interpolation, which keeps outputs unit-norm; a linear blend
// would be geometrically wrong for rotations.
//
// The cutoff maps to coefficients through the analog exponential-decay
// formula, not the bilinear transform used by the biquad package. The two
// designs therefore define "cutoff" in their own customary discretization
// and attenuate slightly differently at the same nominal frequency.
package onepole
