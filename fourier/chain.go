package fourier

import (
	"github.com/npillmayer/epicycle"
)

// Chain is the polyline of an epicycle diagram at one instant: the origin,
// followed by the tip of every rotating vector, each vector attached to the
// tip of its predecessor.
type Chain []epicycle.Pair

// Arrow is a single rotating vector, drawn from Origin to Tip.
type Arrow struct {
	Origin, Tip epicycle.Pair
}

// Vector returns Tip − Origin.
func (a Arrow) Vector() epicycle.Pair {
	return a.Tip - a.Origin
}

// BuildChain lays out the terms of c as rotating vectors at time t.
//
// The chain starts at the origin. The first vector is the (static) DC term.
// Then, for k = 1 … N, the vector c_k·exp(2πi·k·t) is attached, followed by
// c_−k·exp(−2πi·k·t). Lower frequencies thus sit closer to the root of the
// chain. The resulting chain has 2N+2 points and its tip is the value of the
// series at t.
func BuildChain(c Coefficients, t float64) (Chain, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	n := c.Order()
	chain := make(Chain, 0, 2*n+2)
	tip := c[n]
	chain = append(chain, epicycle.Origin, epicycle.Pair(tip))
	for k := 1; k <= n; k++ {
		tip += c[n+k] * rotor(k, t)
		chain = append(chain, epicycle.Pair(tip))
		tip += c[n-k] * rotor(-k, t)
		chain = append(chain, epicycle.Pair(tip))
	}
	return chain, nil
}

// Tip is the end point of the chain. For an empty chain it is the origin.
func (ch Chain) Tip() epicycle.Pair {
	if len(ch) == 0 {
		return epicycle.Origin
	}
	return ch[len(ch)-1]
}

// Arrows returns the vectors of the chain as consecutive point pairs.
// A chain of 2N+2 points yields 2N+1 arrows.
func (ch Chain) Arrows() []Arrow {
	if len(ch) < 2 {
		return nil
	}
	arrows := make([]Arrow, len(ch)-1)
	for i := range arrows {
		arrows[i] = Arrow{Origin: ch[i], Tip: ch[i+1]}
	}
	return arrows
}

// Radii returns the length of every arrow of the chain, i.e. the radius of
// the circle each vector sweeps.
func (ch Chain) Radii() []float64 {
	if len(ch) < 2 {
		return nil
	}
	radii := make([]float64, len(ch)-1)
	for i := range radii {
		radii[i] = (ch[i+1] - ch[i]).Abs()
	}
	return radii
}
