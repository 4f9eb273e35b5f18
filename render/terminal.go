package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/epicycle/fourier"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

type cellStyle struct {
	r     rune
	style tcell.Style
}

var terminalStyles = map[Style]cellStyle{
	StyleInput:         {'·', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	StyleReconstructed: {'•', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	StyleTrace:         {'█', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	StyleChain:         {'∙', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
}

var tipStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

// Terminal is a Sink drawing onto a tcell screen, one character cell per
// surface unit. Its viewport is fitted to a fixed world box and refitted
// whenever the screen size changes.
type Terminal struct {
	screen tcell.Screen
	lo, hi epicycle.Pair
	vp     Viewport
}

// NewTerminal creates a terminal sink showing the world box lo…hi on an
// initialized screen.
func NewTerminal(screen tcell.Screen, lo, hi epicycle.Pair) *Terminal {
	t := &Terminal{screen: screen, lo: lo, hi: hi}
	t.Resize()
	return t
}

// Resize refits the viewport to the current screen size. Row 0 is kept
// free for the status line.
func (t *Terminal) Resize() {
	w, h := t.screen.Size()
	vp := FitViewport(t.lo, t.hi, w, h-1, cellAspect, 1)
	vp.m = vp.m.Combine(epicycle.Translation(epicycle.P(0, 1)))
	vp.Height = h
	t.vp = vp
}

// Viewport returns the current viewport.
func (t *Terminal) Viewport() Viewport {
	return t.vp
}

// Clear blanks the screen.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Polyline draws connected line segments through pts.
func (t *Terminal) Polyline(pts []epicycle.Pair, style Style) {
	cs := terminalStyles[style]
	if len(pts) == 1 {
		t.plot(pts[0], cs)
		return
	}
	for i := 1; i < len(pts); i++ {
		t.segment(pts[i-1], pts[i], cs)
	}
}

// Arrows draws each arrow as a line with a marked tip.
func (t *Terminal) Arrows(arrows []fourier.Arrow, style Style) {
	cs := terminalStyles[style]
	for _, a := range arrows {
		t.segment(a.Origin, a.Tip, cs)
	}
	for _, a := range arrows {
		t.plot(a.Tip, cellStyle{'+', cs.style})
	}
	if len(arrows) > 0 {
		t.plot(arrows[len(arrows)-1].Tip, cellStyle{'●', tipStyle})
	}
}

// Status writes text into the top row.
func (t *Terminal) Status(text string) {
	x := 0
	for _, r := range text {
		if x >= t.vp.Width {
			break
		}
		t.screen.SetContent(x, 0, r, nil, tcell.StyleDefault.Reverse(true))
		x++
	}
}

// Flush makes the drawing visible.
func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Terminal) plot(p epicycle.Pair, cs cellStyle) {
	x, y := t.vp.Cell(p)
	t.set(x, y, cs)
}

func (t *Terminal) set(x, y int, cs cellStyle) {
	if y < 1 || !t.vp.Contains(x, y) {
		return
	}
	t.screen.SetContent(x, y, cs.r, nil, cs.style)
}

func (t *Terminal) segment(p, q epicycle.Pair, cs cellStyle) {
	x0, y0 := t.vp.Cell(p)
	x1, y1 := t.vp.Cell(q)
	if abs(x1-x0)+abs(y1-y0) > 4*(t.vp.Width+t.vp.Height) {
		tracer().Debugf("skipping off-screen segment %v–%v", p, q)
		return
	}
	line(x0, y0, x1, y1, func(x, y int) {
		t.set(x, y, cs)
	})
}

// Action is a user request decoded from a key press.
type Action int

// Actions a host loop reacts to.
const (
	ActionNone Action = iota
	ActionIncrease
	ActionDecrease
	ActionQuit
)

// KeyAction maps a key to an action: Up, '+' and 'k' increase the
// truncation order, Down, '-' and 'j' decrease it, Esc, Ctrl-C and 'q' quit.
func KeyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyUp:
		return ActionIncrease
	case tcell.KeyDown:
		return ActionDecrease
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch r {
		case '+', 'k':
			return ActionIncrease
		case '-', 'j':
			return ActionDecrease
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}
