// Package biquad provides a second-order (biquad) recursive low-pass
// filter over vector-space sample types.
//
// Coefficients are derived from cutoff, sample rate and Q via the bilinear
// transform; the default Q of 0.5 critically damps the filter so step
// inputs settle without overshoot. Processing uses Direct Form I, which
// keeps two past inputs and two past outputs of the sample type itself, so
// the recursion applies to any type with vector-space semantics (scalars,
// 3-vectors). Orientations are not a vector space and have no biquad form
// here; use the onepole package for those.
package biquad
