package curve

import (
	"math"

	"github.com/npillmayer/epicycle"
)

// Circle returns the pure harmonic exp(2πi·k·t): the unit circle, traversed
// k times per period (clockwise for negative k).
func Circle(k int) PeriodicFunction {
	return Func(func(t float64) epicycle.Pair {
		return epicycle.Cis(epicycle.Tau * float64(k) * t)
	})
}

// Ellipse returns an axis-aligned ellipse with half-axes a and b, centered
// at the origin.
func Ellipse(a, b float64) PeriodicFunction {
	return Func(func(t float64) epicycle.Pair {
		s, c := math.Sincos(epicycle.Tau * t)
		return epicycle.P(a*c, b*s)
	})
}

// Star is a five-pointed star with concave, pinched sides.
var Star = Func(func(t float64) epicycle.Pair {
	const c, s = 0.7, 0.15
	t *= epicycle.Tau
	cos25 := math.Cos(2.5 * t)
	m := 1 - c*math.Pow(cos25*cos25, s)
	return epicycle.P(m*math.Cos(t), m*math.Sin(t))
})

// Heart is the classic heart curve x = 16 sin³t, y = 13 cos t − 5 cos 2t − …
var Heart = Func(func(t float64) epicycle.Pair {
	t *= epicycle.Tau
	sin := math.Sin(t)
	return epicycle.P(
		16*sin*sin*sin,
		13*math.Cos(t)-5*math.Cos(2*t)-2*math.Cos(3*t)-math.Cos(4*t),
	)
})

// Batman is the bat-signal silhouette, a piecewise curve made of absolute
// value kinks. Its corners make it a good showcase for Gibbs ringing.
var Batman = Func(func(t float64) epicycle.Pair {
	t = t*16 - 8
	a := math.Abs(t)
	d := func(c float64) float64 { return math.Abs(a - c) }
	bend := math.Pi/2 + math.Asin(47.0/53.0)
	var x float64
	if t != 0 {
		x = (a / t) * (0.3*a + 0.2*d(1) + 2.2*d(2) - 2.7*d(3) - 3*d(5) + 3*d(7) +
			5*math.Sin(math.Pi/4*(d(3)-d(4)+1)) +
			1.25*math.Pow(d(4)-d(5)-1, 3) -
			5.3*math.Cos(bend*((d(7)-d(8)-1)/2)) +
			2.8)
	}
	y := 1.5*d(1) - 1.5*d(2) - 29.0/4*d(4) + 29.0/4*d(5) +
		7.0/16*math.Pow(d(2)-d(3)-1, 4) +
		4.5*math.Sin(math.Pi/4*(d(3)-d(4)-1)) -
		(3*math.Sqrt2/5)*math.Pow(math.Abs(d(5)-d(7)), 2.5) +
		6.4*math.Sin(bend*(d(7)-d(8)+1)/2+math.Asin(56.0/64.0)) +
		4.95
	return epicycle.P(x, y)
})
