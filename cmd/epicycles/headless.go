package main

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/npillmayer/epicycle/session"
)

type headlessConfig struct {
	enabled bool
	hz      int
	ticks   uint64
}

// runHeadless advances s at cfg.hz frames per second without drawing. It
// stops after cfg.ticks frames (never, if 0) or when ctx is canceled, and
// traces the largest distance between trace and input curve per period.
func runHeadless(ctx context.Context, s *session.Session, cfg headlessConfig) error {
	if cfg.hz < 1 {
		return errors.New("headless: hz must be at least 1")
	}
	dt := 1 / float64(cfg.hz)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.hz))
	defer ticker.Stop()

	var frames uint64
	var stats periodStats
	for cfg.ticks == 0 || frames < cfg.ticks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		frame, err := s.Advance(dt)
		if err != nil {
			return err
		}
		frames++
		if frame.T == 0 && stats.frames > 0 {
			stats.report(frame.Order)
			stats = periodStats{}
		}
		stats.add(frame)
	}
	stats.report(s.Order())
	return nil
}

type periodStats struct {
	frames  int
	maxDist float64
}

// add records the distance of the frame's tip to the closest input sample.
func (ps *periodStats) add(frame session.Frame) {
	ps.frames++
	tip := frame.Chain.Tip()
	d := math.Inf(1)
	for _, p := range frame.Input {
		d = math.Min(d, (p - tip).Abs())
	}
	ps.maxDist = math.Max(ps.maxDist, d)
}

func (ps *periodStats) report(order int) {
	if ps.frames == 0 {
		return
	}
	tracer().Infof("N=%d: %d frames, max deviation from input %.4f", order, ps.frames, ps.maxDist)
}
