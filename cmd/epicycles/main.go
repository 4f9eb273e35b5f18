// Command epicycles animates the Fourier approximation of a closed curve as
// a chain of rotating vectors.
//
// Usage:
//
//	epicycles [-curve heart] [-order 10] [-term | -headless] [-sound]
//
// In the window and terminal modes Up/Down (or +/−) change the truncation
// order, Esc or q quit. The headless mode runs the animation without any
// output surface and reports per-period statistics to the trace.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gopxl/beep"
	"github.com/npillmayer/epicycle/audio"
	"github.com/npillmayer/epicycle/curve"
	"github.com/npillmayer/epicycle/render/window"
	"github.com/npillmayer/epicycle/session"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycle'
func tracer() tracing.Trace {
	return tracing.Select("epicycle")
}

type options struct {
	curve    string
	term     bool
	headless headlessConfig
	sound    bool
	toneHz   float64
	list     bool
}

func main() {
	cfg := session.DefaultConfig()
	var opts options
	flag.StringVar(&opts.curve, "curve", "heart", "Curve to approximate (see -list).")
	flag.IntVar(&cfg.Order, "order", cfg.Order, "Initial truncation order N.")
	flag.Float64Var(&cfg.Speed, "speed", cfg.Speed, "Curve periods per second of frame time.")
	flag.Float64Var(&cfg.Period, "period", cfg.Period, "Time after which the animation restarts.")
	flag.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "Quadrature intervals for coefficient computation.")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "Polyline resolution of the static curves.")
	flag.BoolVar(&cfg.Backfill, "backfill", false, "Keep the trace up to the current time when the order changes.")
	flag.BoolVar(&opts.term, "term", false, "Draw into the terminal instead of a window.")
	flag.BoolVar(&opts.headless.enabled, "headless", false, "Run without any output surface.")
	flag.IntVar(&opts.headless.hz, "hz", 60, "Frame rate in terminal and headless mode.")
	flag.Uint64Var(&opts.headless.ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&opts.sound, "sound", false, "Play the series as an XY oscilloscope signal.")
	flag.Float64Var(&opts.toneHz, "tone", 110, "Oscilloscope tone frequency in Hz.")
	flag.BoolVar(&opts.list, "list", false, "List available curves and exit.")
	flag.Parse()

	if err := run(cfg, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg session.Config, opts options) error {
	catalog := curve.DefaultCatalog()
	if opts.list {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return nil
	}
	f, err := catalog.Lookup(opts.curve)
	if err != nil {
		return err
	}
	cfg.Function = f
	s, err := session.New(cfg)
	if err != nil {
		return err
	}
	if opts.sound {
		defer withSound(s, opts.toneHz)()
	}

	switch {
	case opts.headless.enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return runHeadless(ctx, s, opts.headless)
	case opts.term:
		return runTerminal(s, opts.headless.hz)
	}
	return window.Run(s, window.DefaultConfig())
}

// withSound starts audio playback and returns a function to stop it.
// Audio failures are not fatal, the animation runs without sound.
func withSound(s *session.Session, toneHz float64) func() {
	sr := beep.SampleRate(44100)
	osc, err := audio.NewOscilloscope(sr, toneHz, s.Coefficients())
	if err == nil {
		err = audio.Play(sr, osc)
	}
	if err != nil {
		tracer().Errorf("sound disabled: %v", err)
		return func() {}
	}
	s.OnOrderChange(func(s *session.Session) {
		if err := osc.SetCoefficients(s.Coefficients()); err != nil {
			tracer().Errorf("oscilloscope: %v", err)
		}
	})
	return audio.Stop
}
