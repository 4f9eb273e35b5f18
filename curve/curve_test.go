package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, name := range DefaultCatalog().Names() {
		f, err := DefaultCatalog().Lookup(name)
		require.NoError(t, err)
		pts, err := Sample(f, 256)
		require.NoError(t, err)
		assert.Len(t, pts, 257)
		first, last := pts[0], pts[len(pts)-1]
		assert.InDelta(t, 0, (first - last).Abs(), 1e-9, "curve %q is not closed", name)
	}
}

func TestSampleErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Sample(Heart, 0)
	assert.True(t, errors.Is(err, ErrResolution))
	_, err = Sample(nil, 10)
	assert.True(t, errors.Is(err, ErrNilFunction))
	var missing Func
	assert.True(t, IsNil(missing))
	assert.False(t, IsNil(Heart))
	assert.NotPanics(t, func() {
		_, err = Sample(missing, 10)
	})
	assert.True(t, errors.Is(err, ErrNilFunction))
}

func TestCircleHarmonic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Circle(1)
	assert.True(t, c.At(0).Equal(epicycle.P(1, 0)))
	assert.True(t, c.At(0.25).Equal(epicycle.P(0, 1)))
	c2 := Circle(2)
	assert.True(t, c2.At(0.25).Equal(epicycle.P(-1, 0)))
}

func TestHeartShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// top dip at t=0, bottom tip at t=1/2
	assert.True(t, Heart.At(0).Equal(epicycle.P(0, 5)))
	assert.True(t, Heart.At(0.5).Equal(epicycle.P(0, -17)))
}

func TestStarPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// cos(2.5·τt) vanishes at t = 0.1: a spike of (almost) full radius
	p := Star.At(0.1)
	assert.InDelta(t, 1.0, p.Abs(), 1e-3)
	q := Star.At(0)
	assert.InDelta(t, 0.3, q.Abs(), 1e-9)
}

func TestBatmanFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, err := Sample(Batman, 1000)
	require.NoError(t, err)
	for i, p := range pts {
		if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
			t.Fatalf("batman yields NaN at sample %d", i)
		}
	}
	lo, hi := epicycle.Bounds(pts)
	assert.Less(t, lo.X(), -6.0)
	assert.Greater(t, hi.X(), 6.0)
}

func TestCatalog(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := DefaultCatalog()
	assert.Equal(t, []string{"batman", "circle", "ellipse", "heart", "star"}, c.Names())
	_, err := c.Lookup("dragon")
	assert.True(t, errors.Is(err, ErrUnknownCurve))
	c.Register("dragon", Circle(3))
	c.Register("broken", nil)
	c.Register("void", Func(nil))
	assert.Equal(t, 6, c.Len())
	_, err = c.Lookup("void")
	assert.True(t, errors.Is(err, ErrUnknownCurve))
	f, err := c.Lookup("dragon")
	require.NoError(t, err)
	assert.True(t, f.At(0).Equal(epicycle.P(1, 0)))
}
