/*
Package curve provides closed parametric curves to be approximated.

A curve is anything implementing PeriodicFunction: a pure mapping from a
parameter t in [0,1] to a point in the plane. Plain Go functions are adapted
with type Func:

	heart := curve.Func(func(t float64) epicycle.Pair { ... })

The package ships a handful of predefined curves (star, heart, batman,
circles and ellipses) and a catalog to look them up by name.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"errors"

	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycle'
func tracer() tracing.Trace {
	return tracing.Select("epicycle")
}

var (
	// ErrNilFunction indicates a nil curve.
	ErrNilFunction = errors.New("curve function must not be nil")
	// ErrResolution indicates a sample count below 1.
	ErrResolution = errors.New("sample resolution must be at least 1")
	// ErrUnknownCurve indicates a catalog lookup for an unregistered name.
	ErrUnknownCurve = errors.New("unknown curve")
)

// PeriodicFunction maps a parameter t ∈ [0,1] to a point of a closed curve.
// Implementations must be pure and are expected to be periodic with
// period 1; this is assumed, not checked.
type PeriodicFunction interface {
	At(t float64) epicycle.Pair
}

// Func adapts an ordinary function to a PeriodicFunction.
type Func func(t float64) epicycle.Pair

// At calls f(t).
func (f Func) At(t float64) epicycle.Pair {
	return f(t)
}

// IsNil is true for a missing function, including a nil Func wrapped in a
// PeriodicFunction.
func IsNil(f PeriodicFunction) bool {
	switch fn := f.(type) {
	case nil:
		return true
	case Func:
		return fn == nil
	}
	return false
}

// Sample evaluates f at t = i/resolution for i = 0…resolution, returning
// resolution+1 points. For a closed curve the first and last point coincide.
func Sample(f PeriodicFunction, resolution int) ([]epicycle.Pair, error) {
	if IsNil(f) {
		return nil, ErrNilFunction
	}
	if resolution < 1 {
		return nil, ErrResolution
	}
	dt := 1 / float64(resolution)
	pts := make([]epicycle.Pair, resolution+1)
	for i := range pts {
		pts[i] = f.At(float64(i) * dt)
	}
	return pts, nil
}
