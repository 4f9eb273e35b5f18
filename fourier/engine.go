/*
Package fourier computes truncated complex Fourier series of closed curves
and turns them into epicycles.

A curve f: [0,1] → ℂ is approximated by

	f(t) ≈ Σ c_k · exp(2πi·k·t),  k = −N … N

where N is the truncation order. Package fourier has three parts:

  - an Engine computing the 2N+1 coefficients c_k by numerical integration
  - a reconstructor evaluating the truncated series (Evaluate, SampleCurve)
  - a chain builder laying out each term as a rotating vector (BuildChain)

Coefficients are stored in a flat slice of length 2N+1. Index N holds the
DC term c_0, index N+k holds c_k and index N−k holds c_−k.

The engine deliberately uses the rectangle rule instead of an FFT. For the
orders this package is meant for (N up to a few dozen) this is fast enough
and keeps the quadrature resolution independent of N.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fourier

import (
	"fmt"

	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/epicycle/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycle'
func tracer() tracing.Trace {
	return tracing.Select("epicycle")
}

// DefaultResolution is the number of quadrature intervals used by an Engine
// unless configured otherwise.
const DefaultResolution = 1000

// Engine computes Fourier coefficients by rectangle-rule quadrature over
// Resolution equal subintervals of [0,1]. The zero value is not usable;
// create engines with NewEngine.
type Engine struct {
	Resolution int // number of quadrature intervals A
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolution sets the number of quadrature intervals. Larger values
// improve high-frequency coefficients at proportional cost.
func WithResolution(a int) Option {
	return func(e *Engine) {
		e.Resolution = a
	}
}

// NewEngine creates an engine with DefaultResolution, modified by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{Resolution: DefaultResolution}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute returns the 2n+1 coefficients c_−n … c_n of f.
//
// Each c_k = ∫₀¹ f(t)·exp(−2πi·k·t) dt is approximated by sampling the
// integrand at the left edge of each of the A subintervals and multiplying
// the sum by 1/A. Frequencies beyond n are lost; for curves with corners
// this shows up as ringing near the corners.
//
// n = 0 is valid and yields the average of f. A negative n is an error.
func (e *Engine) Compute(f curve.PeriodicFunction, n int) (Coefficients, error) {
	if n < 0 {
		return nil, fmt.Errorf("compute coefficients for order %d: %w", n, ErrNegativeOrder)
	}
	if e.Resolution < 1 {
		return nil, fmt.Errorf("compute coefficients with resolution %d: %w", e.Resolution, ErrResolution)
	}
	if curve.IsNil(f) {
		return nil, ErrNilFunction
	}
	a := e.Resolution
	dt := 1 / float64(a)
	samples := make([]complex128, a) // f is pure, so sample it once for all k
	for i := range samples {
		samples[i] = complex128(f.At(float64(i) * dt))
	}
	coeffs := make(Coefficients, 2*n+1)
	for k := -n; k <= n; k++ {
		var sum complex128
		for i, s := range samples {
			t := float64(i) * dt
			sum += s * complex128(epicycle.Cis(-epicycle.Tau*float64(k)*t))
		}
		coeffs[k+n] = sum * complex(dt, 0)
	}
	tracer().Debugf("computed %d coefficients (A=%d), DC = %v", len(coeffs), a, coeffs.DC())
	return coeffs, nil
}
