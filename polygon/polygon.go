/*
Package polygon deals with closed polygons built from curve samples.

Its main purpose is to measure how well a reconstructed curve matches its
input: both are sampled, closed into polygons, and the area of their
symmetric difference is computed by polygon clipping. An area of 0 means a
perfect match.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("epicycle")
}

var (
	// ErrNotClosed indicates an operation on a polygon which has not been
	// closed with Cycle().
	ErrNotClosed = errors.New("polygon is not closed")
	// ErrTooFewKnots indicates a polygon with fewer than 3 knots.
	ErrTooFewKnots = errors.New("polygon has too few knots")
)

// Polygon is a sequence of knots, optionally closed. Build it with
// NullPolygon().Knot(…)…Cycle() or from a sample slice with FromPoints.
type Polygon struct {
	knots []epicycle.Pair
	cycle bool
}

// NullPolygon creates an empty, open polygon.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot.
func (pg *Polygon) Knot(p epicycle.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes the polygon.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a closed rectangle from two opposite corners.
func Box(p1, p2 epicycle.Pair) *Polygon {
	return NullPolygon().
		Knot(p1).Knot(epicycle.P(p2.X(), p1.Y())).
		Knot(p2).Knot(epicycle.P(p1.X(), p2.Y())).
		Cycle()
}

// FromPoints creates a closed polygon from curve samples. A trailing sample
// repeating the first one is dropped, as Sample functions produce it for
// closed curves.
func FromPoints(pts []epicycle.Pair) *Polygon {
	if n := len(pts); n > 1 && pts[0].Equal(pts[n-1]) {
		pts = pts[:n-1]
	}
	pg := &Polygon{knots: make([]epicycle.Pair, len(pts)), cycle: true}
	copy(pg.knots, pts)
	return pg
}

// N is the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Z returns knot i, wrapping around for closed polygons.
func (pg *Polygon) Z(i int) epicycle.Pair {
	if pg.cycle && len(pg.knots) > 0 {
		i = ((i % len(pg.knots)) + len(pg.knots)) % len(pg.knots)
	}
	return pg.knots[i]
}

// IsCycle is true for a closed polygon.
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

func (pg *Polygon) check() error {
	if !pg.cycle {
		return ErrNotClosed
	}
	if len(pg.knots) < 3 {
		return fmt.Errorf("%w: %d", ErrTooFewKnots, len(pg.knots))
	}
	return nil
}

// Area is the enclosed area of a closed polygon (shoelace formula, always
// non-negative). Self-intersecting polygons report the net area of their
// signed lobes.
func (pg *Polygon) Area() (float64, error) {
	if err := pg.check(); err != nil {
		return 0, err
	}
	return math.Abs(shoelace(pg.knots)), nil
}

func shoelace(pts []epicycle.Pair) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

// Difference returns the area of the symmetric difference of two closed
// polygons, i.e. the area covered by exactly one of them. It is computed
// as area(a) + area(b) − 2·area(a ∩ b).
func Difference(a, b *Polygon) (float64, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	if err := b.check(); err != nil {
		return 0, err
	}
	areaA, _ := a.Area()
	areaB, _ := b.Area()
	if coincident(a, b) { // the clipper does not terminate on identical contours
		L().Debugf("area difference 0 (coincident polygons, area %g)", areaA)
		return 0, nil
	}
	var common float64
	if !epicycle.Is0(areaA) && !epicycle.Is0(areaB) { // degenerate contours confuse the clipper
		common = clippedArea(a.clip().Construct(polyclip.INTERSECTION, b.clip()))
	}
	d := areaA + areaB - 2*common
	L().Debugf("area difference %g (areas %g, %g, common %g)", d, areaA, areaB, common)
	return math.Max(d, 0), nil
}

// coincident is true if a and b have the same number of knots and every
// knot of a is within ε of the corresponding knot of b.
func coincident(a, b *Polygon) bool {
	if len(a.knots) != len(b.knots) {
		return false
	}
	for i, p := range a.knots {
		if !p.Equal(b.knots[i]) {
			return false
		}
	}
	return true
}

// RelativeDifference is Difference(a, b) divided by the area of a. It is 0
// for a perfect match and grows as b departs from a.
func RelativeDifference(a, b *Polygon) (float64, error) {
	d, err := Difference(a, b)
	if err != nil {
		return 0, err
	}
	area, _ := a.Area()
	if epicycle.Is0(area) {
		return 0, fmt.Errorf("reference polygon has no area: %w", ErrTooFewKnots)
	}
	return d / area, nil
}

func (pg *Polygon) clip() polyclip.Polygon {
	c := make(polyclip.Contour, len(pg.knots))
	for i, p := range pg.knots {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return polyclip.Polygon{c}
}

// clippedArea sums the contours of a clipping result. The intersection of
// two simple polygons has no holes, so every contour counts positively.
func clippedArea(pg polyclip.Polygon) float64 {
	var area float64
	for _, c := range pg {
		if len(c) >= 3 {
			area += math.Abs(contourArea(c))
		}
	}
	return area
}

func contourArea(c polyclip.Contour) float64 {
	var a float64
	for i, p := range c {
		q := c[(i+1)%len(c)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// AsString returns a polygon as a (debugging) string in MetaPost-like
// notation, e.g. "(0,0) -- (1,3) -- (3,0) -- cycle".
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, p := range pg.knots {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		fmt.Fprintf(&sb, "(%.4g,%.4g)", p.X(), p.Y())
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
