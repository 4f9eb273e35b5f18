package fourier

import (
	"fmt"

	"github.com/npillmayer/epicycle"
)

// rotor returns exp(2πi·k·t).
func rotor(k int, t float64) complex128 {
	return complex128(epicycle.Cis(epicycle.Tau * float64(k) * t))
}

// Evaluate sums the truncated series Σ c_k·exp(2πi·k·t) at parameter t.
// The result is periodic in t with period 1; t may be any real number.
func Evaluate(c Coefficients, t float64) (epicycle.Pair, error) {
	if err := c.check(); err != nil {
		return epicycle.Origin, err
	}
	return evaluate(c, t), nil
}

func evaluate(c Coefficients, t float64) epicycle.Pair {
	n := c.Order()
	var f complex128
	for i, z := range c {
		f += z * rotor(i-n, t)
	}
	return epicycle.Pair(f)
}

// SampleCurve evaluates the series at t = i/resolution for i = 0…resolution
// and returns the resolution+1 points, ready to be drawn as a polyline.
func SampleCurve(c Coefficients, resolution int) ([]epicycle.Pair, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if resolution < 1 {
		return nil, fmt.Errorf("sample curve with resolution %d: %w", resolution, ErrResolution)
	}
	dt := 1 / float64(resolution)
	pts := make([]epicycle.Pair, resolution+1)
	for i := range pts {
		pts[i] = evaluate(c, float64(i)*dt)
	}
	return pts, nil
}
