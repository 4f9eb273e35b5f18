/*
Package render draws animation frames onto a surface.

Renderers implement Sink, a deliberately small set of drawing primitives:
polylines, arrows and a status line. Draw feeds a session.Frame to a Sink
in a fixed order, so that the moving parts end up on top of the static
curves.

World coordinates are mapped onto the surface by a Viewport, an affine
transform fitted to the extent of the input curve.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"fmt"
	"math"

	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/epicycle/fourier"
	"github.com/npillmayer/epicycle/session"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycle.render'
func tracer() tracing.Trace {
	return tracing.Select("epicycle.render")
}

// Style tells a sink which part of a frame it is drawing.
type Style int

// Styles of frame elements, in drawing order.
const (
	StyleInput Style = iota
	StyleReconstructed
	StyleTrace
	StyleChain
)

func (s Style) String() string {
	switch s {
	case StyleInput:
		return "input"
	case StyleReconstructed:
		return "reconstructed"
	case StyleTrace:
		return "trace"
	case StyleChain:
		return "chain"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Sink is a drawing surface. Coordinates passed to a sink are world
// coordinates; mapping them is the sink's business.
type Sink interface {
	Clear()
	Polyline(pts []epicycle.Pair, style Style)
	Arrows(arrows []fourier.Arrow, style Style)
	Status(text string)
	Flush() error
}

// CircleSink is a Sink which can also draw the circle every vector of an
// epicycle chain sweeps. Draw calls Circles right before Arrows.
type CircleSink interface {
	Sink
	Circles(centers []epicycle.Pair, radii []float64)
}

// Draw renders frame onto sink: input curve, reconstructed curve, trace,
// epicycle circles (for a CircleSink), vector chain and status line, then
// flushes the sink.
func Draw(sink Sink, frame session.Frame) error {
	sink.Clear()
	sink.Polyline(frame.Input, StyleInput)
	sink.Polyline(frame.Reconstructed, StyleReconstructed)
	sink.Polyline(frame.Trace, StyleTrace)
	if cs, ok := sink.(CircleSink); ok && len(frame.Chain) > 1 {
		cs.Circles(frame.Chain[:len(frame.Chain)-1], frame.Chain.Radii())
	}
	sink.Arrows(frame.Arrows, StyleChain)
	sink.Status(StatusLine(frame))
	return sink.Flush()
}

// StatusLine formats the time, order and fidelity of a frame.
func StatusLine(frame session.Frame) string {
	s := fmt.Sprintf("t=%.5f  N=%d", frame.T, frame.Order)
	if !math.IsNaN(frame.Fidelity) {
		s += fmt.Sprintf("  Δ=%.2f%%", frame.Fidelity*100)
	}
	return s
}
