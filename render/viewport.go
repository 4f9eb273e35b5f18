package render

import (
	"math"

	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/epicycle/session"
)

// Viewport maps world coordinates onto a surface of Width × Height units,
// with y pointing down.
type Viewport struct {
	Width, Height int
	scale         float64
	m             epicycle.AT
}

// FitViewport creates a viewport showing the box lo…hi centered on a
// width × height surface, keeping a margin (in surface units) on every
// side. aspect is the height of a surface unit relative to its width:
// 1 for square pixels, about 2 for terminal cells.
func FitViewport(lo, hi epicycle.Pair, width, height int, aspect, margin float64) Viewport {
	bw, bh := hi.X()-lo.X(), hi.Y()-lo.Y()
	if epicycle.Is0(bw) {
		bw = 1
	}
	if epicycle.Is0(bh) {
		bh = 1
	}
	if aspect <= 0 {
		aspect = 1
	}
	uw := math.Max(float64(width-1)-2*margin, 1)
	uh := math.Max(float64(height-1)-2*margin, 1)
	s := math.Min(uw/bw, aspect*uh/bh)
	center := (lo + hi) / 2
	m := epicycle.Translation(-center).
		Combine(epicycle.Scaling(s, -s/aspect)).
		Combine(epicycle.Translation(epicycle.P(float64(width-1)/2, float64(height-1)/2)))
	tracer().Debugf("viewport %dx%d, scale %g, transform %s", width, height, s, m)
	return Viewport{Width: width, Height: height, scale: s, m: m}
}

// Map transforms a world point to surface coordinates.
func (v Viewport) Map(p epicycle.Pair) (float64, float64) {
	return v.m.Transform(p).F()
}

// Scale is the number of horizontal surface units per world unit.
func (v Viewport) Scale() float64 {
	return v.scale
}

// Cell maps a world point to the nearest integer surface position.
func (v Viewport) Cell(p epicycle.Pair) (int, int) {
	x, y := v.Map(p)
	return int(math.Round(x)), int(math.Round(y))
}

// Contains reports whether a surface position lies on the surface.
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Width && y < v.Height
}

// Extent returns the bounding box of all given point sets plus the origin,
// where every epicycle chain is rooted.
func Extent(sets ...[]epicycle.Pair) (epicycle.Pair, epicycle.Pair) {
	all := []epicycle.Pair{epicycle.Origin}
	for _, pts := range sets {
		all = append(all, pts...)
	}
	return epicycle.Bounds(all)
}

// SessionExtent is the Extent of the input and reconstructed curves of s.
// It leaves the session's time and trace untouched.
func SessionExtent(s *session.Session) (epicycle.Pair, epicycle.Pair) {
	return Extent(s.Input(), s.Reconstructed())
}

// line rasterizes the segment (x0,y0)–(x1,y1) with Bresenham's algorithm,
// calling plot for every position, end points included.
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
