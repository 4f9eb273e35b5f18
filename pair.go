/*
Package epicycle approximates closed planar curves by truncated Fourier series
and animates the approximation as a chain of rotating vectors.

The root package holds the numeric vocabulary shared by all sub-packages:
2D points as complex numbers and affine transformations used to map curve
coordinates onto a drawing surface. The Fourier machinery lives in package
fourier, predefined curves in package curve and the animation state in
package session.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package epicycle

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycle'
func tracer() tracing.Trace {
	return tracing.Select("epicycle")
}

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D point, stored as a complex number with real part x and
// imaginary part y. Pairs add and scale like complex numbers, which is what
// makes them the natural operand for Fourier sums.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P returns a Pair from a complex number. NaN and Inf values are mapped
// to the origin and reported as an error to the trace.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for non-finite complex %v", c)
		return Origin
	}
	return Pair(c)
}

// Cis returns the unit pair at angle theta (radians), i.e. exp(iθ).
func Cis(theta float64) Pair {
	s, c := math.Sincos(theta)
	return P(c, s)
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// F returns both coordinates of a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// Abs is the euclidean length of p.
func (p Pair) Abs() float64 {
	return cmplx.Abs(complex128(p))
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return p * Cis(theta)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// Bounds returns the lower-left and upper-right corners of the axis-aligned
// box enclosing pts. For an empty slice both corners are the origin.
func Bounds(pts []Pair) (Pair, Pair) {
	if len(pts) == 0 {
		return Origin, Origin
	}
	minx, miny := pts[0].F()
	maxx, maxy := minx, miny
	for _, p := range pts[1:] {
		minx, maxx = math.Min(minx, p.X()), math.Max(maxx, p.X())
		miny, maxy = math.Min(miny, p.Y()), math.Max(maxy, p.Y())
	}
	return P(minx, miny), P(maxx, maxy)
}
