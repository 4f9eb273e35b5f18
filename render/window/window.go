/*
Package window runs an epicycle animation in a desktop window.

The window is driven by ebiten's fixed-rate game loop: Update advances the
session once per tick and reacts to key presses, Draw hands the latest
frame to an image-backed render.Sink.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package window

import (
	"errors"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/epicycle/fourier"
	"github.com/npillmayer/epicycle/render"
	"github.com/npillmayer/epicycle/session"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycle.render'
func tracer() tracing.Trace {
	return tracing.Select("epicycle.render")
}

// Config configures the window.
type Config struct {
	Title         string
	Width, Height int
	TPS           int // ticks (session frames) per second
}

// DefaultConfig returns an 800×800 window running at 60 ticks per second.
func DefaultConfig() Config {
	return Config{Title: "Fourier epicycles", Width: 800, Height: 800, TPS: 60}
}

var strokes = map[render.Style]struct {
	clr   color.Color
	width float32
}{
	render.StyleInput:         {color.RGBA{0x40, 0x60, 0xff, 0xff}, 1},
	render.StyleReconstructed: {color.RGBA{0x20, 0xc0, 0x40, 0xff}, 3},
	render.StyleTrace:         {color.RGBA{0xe0, 0x20, 0x20, 0xff}, 3},
	render.StyleChain:         {color.RGBA{0xe0, 0xe0, 0xe0, 0xff}, 1},
}

var circleColor = color.RGBA{0x60, 0x60, 0x60, 0x80}

// canvas is a render.Sink drawing onto an ebiten image.
type canvas struct {
	dst    *ebiten.Image
	vp     render.Viewport
	status string
}

func (c *canvas) Clear() {
	c.dst.Fill(color.Black)
}

func (c *canvas) Polyline(pts []epicycle.Pair, style render.Style) {
	st := strokes[style]
	for i := 1; i < len(pts); i++ {
		x0, y0 := c.vp.Map(pts[i-1])
		x1, y1 := c.vp.Map(pts[i])
		vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), st.width, st.clr, true)
	}
}

// Circles draws the circle swept by every vector of the chain.
func (c *canvas) Circles(centers []epicycle.Pair, radii []float64) {
	for i, r := range radii {
		r *= c.vp.Scale()
		if r <= 2 {
			continue
		}
		x, y := c.vp.Map(centers[i])
		vector.StrokeCircle(c.dst, float32(x), float32(y), float32(r), 1, circleColor, true)
	}
}

// Arrows draws every vector of the chain.
func (c *canvas) Arrows(arrows []fourier.Arrow, style render.Style) {
	st := strokes[style]
	for _, a := range arrows {
		ox, oy := c.vp.Map(a.Origin)
		tx, ty := c.vp.Map(a.Tip)
		vector.StrokeLine(c.dst, float32(ox), float32(oy), float32(tx), float32(ty), st.width, st.clr, true)
		c.arrowHead(ox, oy, tx, ty, st.clr)
	}
}

func (c *canvas) arrowHead(ox, oy, tx, ty float64, clr color.Color) {
	const size = 6.0
	d := math.Hypot(tx-ox, ty-oy)
	if d < size {
		return
	}
	ux, uy := (tx-ox)/d, (ty-oy)/d
	for _, side := range []float64{-1, 1} {
		hx := tx - size*ux + side*size/2*uy
		hy := ty - size*uy - side*size/2*ux
		vector.StrokeLine(c.dst, float32(tx), float32(ty), float32(hx), float32(hy), 1, clr, true)
	}
}

func (c *canvas) Status(text string) {
	c.status = text
}

func (c *canvas) Flush() error {
	ebitenutil.DebugPrint(c.dst, c.status+"\nUp/Down change order, Esc quits")
	return nil
}

var _ render.CircleSink = (*canvas)(nil)

type game struct {
	s     *session.Session
	cfg   Config
	frame session.Frame
	vp    render.Viewport
	lo    epicycle.Pair
	hi    epicycle.Pair
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		if err := g.s.Increase(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		if err := g.s.Decrease(); err != nil && !errors.Is(err, fourier.ErrNegativeOrder) {
			return err
		}
	}
	frame, err := g.s.Advance(1 / float64(g.cfg.TPS))
	if err != nil {
		return err
	}
	g.frame = frame
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := &canvas{dst: screen, vp: g.vp}
	if err := render.Draw(c, g.frame); err != nil {
		tracer().Errorf("draw: %v", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.vp.Width || outsideHeight != g.vp.Height {
		g.vp = render.FitViewport(g.lo, g.hi, outsideWidth, outsideHeight, 1, 20)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window animating s. It blocks until the window is closed or
// Escape is pressed.
func Run(s *session.Session, cfg Config) error {
	g := &game{s: s, cfg: cfg}
	g.lo, g.hi = render.SessionExtent(s)
	g.vp = render.FitViewport(g.lo, g.hi, cfg.Width, cfg.Height, 1, 20)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	tracer().Infof("opening %dx%d window at %d TPS", cfg.Width, cfg.Height, cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
