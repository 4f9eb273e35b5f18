package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/epicycle/curve"
	"github.com/npillmayer/epicycle/fourier"
	"github.com/npillmayer/epicycle/session"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
	text  string
}

func (r *recorder) Clear() { r.calls = append(r.calls, "clear") }
func (r *recorder) Polyline(pts []epicycle.Pair, style Style) {
	r.calls = append(r.calls, "polyline:"+style.String())
}
func (r *recorder) Arrows(arrows []fourier.Arrow, style Style) {
	r.calls = append(r.calls, "arrows:"+style.String())
}
func (r *recorder) Status(text string) {
	r.calls = append(r.calls, "status")
	r.text = text
}
func (r *recorder) Flush() error {
	r.calls = append(r.calls, "flush")
	return nil
}

type circleRecorder struct {
	recorder
	centers []epicycle.Pair
	radii   []float64
}

func (r *circleRecorder) Circles(centers []epicycle.Pair, radii []float64) {
	r.calls = append(r.calls, "circles")
	r.centers, r.radii = centers, radii
}

func circleFrame(t *testing.T) session.Frame {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.Function = curve.Circle(1)
	cfg.Order = 1
	cfg.Samples = 64
	s, err := session.New(cfg)
	require.NoError(t, err)
	frame, err := s.Advance(0)
	require.NoError(t, err)
	return frame
}

func TestDrawOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := &recorder{}
	require.NoError(t, Draw(r, circleFrame(t)))
	assert.Equal(t, []string{
		"clear",
		"polyline:input",
		"polyline:reconstructed",
		"polyline:trace",
		"arrows:chain",
		"status",
		"flush",
	}, r.calls)
	assert.True(t, strings.HasPrefix(r.text, "t=0.00000  N=1  Δ="), r.text)
}

func TestDrawCircles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := &circleRecorder{}
	frame := circleFrame(t)
	require.NoError(t, Draw(r, frame))
	assert.Equal(t, []string{
		"clear",
		"polyline:input",
		"polyline:reconstructed",
		"polyline:trace",
		"circles",
		"arrows:chain",
		"status",
		"flush",
	}, r.calls)
	// origin→DC, +1, −1
	require.Len(t, r.radii, 3)
	assert.Equal(t, []epicycle.Pair(frame.Chain[:3]), r.centers)
	assert.InDelta(t, 1.0, r.radii[1], 1e-9)
	assert.InDelta(t, 0.0, r.radii[2], 1e-9)
}

func TestStatusLineWithoutFidelity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := StatusLine(session.Frame{T: 0.5, Order: 3, Fidelity: math.NaN()})
	assert.Equal(t, "t=0.50000  N=3", s)
	assert.Equal(t, "Style(9)", Style(9).String())
}

func TestViewport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vp := FitViewport(epicycle.P(-1, -1), epicycle.P(1, 1), 101, 101, 1, 0)
	x, y := vp.Map(epicycle.P(1, 1))
	assert.InDelta(t, 100.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
	x, y = vp.Map(epicycle.P(-1, -1))
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 100.0, y, 1e-9)
	cx, cy := vp.Cell(epicycle.Origin)
	assert.Equal(t, 50, cx)
	assert.Equal(t, 50, cy)

	// terminal cells are twice as high as wide
	vp = FitViewport(epicycle.P(-1, -1), epicycle.P(1, 1), 81, 21, 2, 0)
	x, y = vp.Map(epicycle.P(1, 1))
	assert.InDelta(t, 60.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
	assert.True(t, vp.Contains(80, 20))
	assert.False(t, vp.Contains(81, 0))
	assert.InDelta(t, 20.0, vp.Scale(), 1e-9)
}

func TestExtent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lo, hi := Extent([]epicycle.Pair{epicycle.P(2, 3), epicycle.P(4, 5)})
	assert.Equal(t, epicycle.P(0, 0), lo)
	assert.Equal(t, epicycle.P(4, 5), hi)
}

func TestSessionExtentKeepsTrace(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := session.DefaultConfig()
	cfg.Function = curve.Ellipse(2, 1)
	cfg.Order = 1
	cfg.Samples = 64
	s, err := session.New(cfg)
	require.NoError(t, err)
	lo, hi := SessionExtent(s)
	assert.True(t, lo.Equal(epicycle.P(-2, -1)), "lo = %s", lo)
	assert.True(t, hi.Equal(epicycle.P(2, 1)), "hi = %s", hi)
	assert.Equal(t, 0, s.Trace().Len())
	assert.Equal(t, 0.0, s.Time())
	frame, err := s.Advance(0.1)
	require.NoError(t, err)
	assert.Len(t, frame.Trace, 1)
}

func TestBresenham(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var got [][2]int
	line(0, 0, 3, 1, func(x, y int) { got = append(got, [2]int{x, y}) })
	require.Len(t, got, 4)
	assert.Equal(t, [2]int{0, 0}, got[0])
	assert.Equal(t, [2]int{3, 1}, got[3])
	got = got[:0]
	line(2, 2, 2, 2, func(x, y int) { got = append(got, [2]int{x, y}) })
	assert.Equal(t, [][2]int{{2, 2}}, got)
}

func TestTerminalSink(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)
	frame := circleFrame(t)
	lo, hi := Extent(frame.Input)
	term := NewTerminal(screen, lo, hi)
	require.NoError(t, Draw(term, frame))

	status := ""
	for x := 0; x < 14; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		status += string(r)
	}
	assert.Equal(t, "t=0.00000  N=1", status)

	// at t=0 the chain tip of the unit circle is (1,0)
	x, y := term.Viewport().Cell(epicycle.P(1, 0))
	r, _, _, _ := screen.GetContent(x, y)
	assert.Equal(t, '●', r)
	// the circle's top is drawn, by the input or the reconstructed curve
	x, y = term.Viewport().Cell(epicycle.P(0, 1))
	r, _, _, _ = screen.GetContent(x, y)
	assert.Contains(t, []rune{'·', '•'}, r)
	assert.GreaterOrEqual(t, y, 1)
}

func TestKeyAction(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, ActionIncrease, KeyAction(tcell.KeyUp, 0))
	assert.Equal(t, ActionDecrease, KeyAction(tcell.KeyDown, 0))
	assert.Equal(t, ActionIncrease, KeyAction(tcell.KeyRune, '+'))
	assert.Equal(t, ActionDecrease, KeyAction(tcell.KeyRune, 'j'))
	assert.Equal(t, ActionQuit, KeyAction(tcell.KeyEscape, 0))
	assert.Equal(t, ActionQuit, KeyAction(tcell.KeyRune, 'q'))
	assert.Equal(t, ActionNone, KeyAction(tcell.KeyRune, 'x'))
	assert.Equal(t, ActionNone, KeyAction(tcell.KeyLeft, 0))
}
