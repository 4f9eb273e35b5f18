/*
Package session holds the state of an epicycle animation between frames.

A host loop (terminal, window or headless) owns one Session. Once per frame
it calls Advance with the elapsed wall-clock time and hands the returned
Frame to a renderer. Between frames it may change the truncation order with
Increase, Decrease or SetOrder. The session takes care of the bookkeeping:

  - coefficients are recomputed from scratch whenever the order changes
  - the trace of the chain's tip is cleared on an order change and whenever
    the animation time wraps around at the end of a period

A Session is not safe for concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/epicycle/curve"
	"github.com/npillmayer/epicycle/fourier"
	"github.com/npillmayer/epicycle/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycle.session'
func tracer() tracing.Trace {
	return tracing.Select("epicycle.session")
}

// ErrConfig indicates an invalid session configuration.
var ErrConfig = errors.New("invalid session configuration")

// Config configures a Session.
type Config struct {
	Function   curve.PeriodicFunction // curve to approximate
	Order      int                    // initial truncation order N
	Speed      float64                // curve parameter advanced per second of frame time
	Period     float64                // time wraps to 0 past this value
	Resolution int                    // quadrature intervals for coefficient computation
	Samples    int                    // polyline resolution of the static curves
	Backfill   bool                   // after an order change, refill the trace up to the current time
}

// DefaultConfig returns a configuration for the heart curve, order 10,
// one curve period every 10 seconds.
func DefaultConfig() Config {
	return Config{
		Function:   curve.Heart,
		Order:      10,
		Speed:      0.1,
		Period:     1,
		Resolution: fourier.DefaultResolution,
		Samples:    1024,
	}
}

func (cfg Config) validate() error {
	switch {
	case curve.IsNil(cfg.Function):
		return fmt.Errorf("%w: no curve function", ErrConfig)
	case cfg.Speed < 0 || math.IsNaN(cfg.Speed) || math.IsInf(cfg.Speed, 0):
		return fmt.Errorf("%w: speed %g", ErrConfig, cfg.Speed)
	case !(cfg.Period > 0) || math.IsInf(cfg.Period, 0):
		return fmt.Errorf("%w: period %g", ErrConfig, cfg.Period)
	case cfg.Samples < 1:
		return fmt.Errorf("%w: samples %d", ErrConfig, cfg.Samples)
	}
	return nil
}

// Frame is everything a renderer needs to draw one animation frame. All
// slices are read-only for the receiver; Trace is valid until the next call
// to Advance.
type Frame struct {
	T             float64         // curve parameter of this frame
	Order         int             // truncation order N
	Input         []epicycle.Pair // samples of the input curve
	Reconstructed []epicycle.Pair // samples of the truncated series
	Trace         []epicycle.Pair // tip positions since the last reset
	Chain         fourier.Chain   // epicycle chain at T
	Arrows        []fourier.Arrow // chain as arrow segments
	Fidelity      float64         // relative area difference input/series, NaN if unknown
}

// Session is the animation state: configuration, current coefficient set,
// time and trace.
type Session struct {
	cfg      Config
	engine   *fourier.Engine
	order    int
	coeffs   fourier.Coefficients
	t        float64
	trace    *TraceBuffer
	input    []epicycle.Pair
	inputPg  *polygon.Polygon
	recon    []epicycle.Pair
	fidelity float64
	onChange []func(*Session)
}

// New creates a session, computing the initial coefficient set and the
// static curve samples.
func New(cfg Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	input, err := curve.Sample(cfg.Function, cfg.Samples)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg,
		engine: fourier.NewEngine(fourier.WithResolution(cfg.Resolution)),
		trace:  NewTraceBuffer(cfg.Samples),
		input:  input,
	}
	s.inputPg = polygon.FromPoints(input)
	if err := s.SetOrder(cfg.Order); err != nil {
		return nil, err
	}
	return s, nil
}

// Order is the current truncation order N.
func (s *Session) Order() int {
	return s.order
}

// Coefficients returns the current coefficient set.
func (s *Session) Coefficients() fourier.Coefficients {
	return s.coeffs
}

// Time is the current curve parameter.
func (s *Session) Time() float64 {
	return s.t
}

// Input returns the samples of the input curve.
func (s *Session) Input() []epicycle.Pair {
	return s.input
}

// Reconstructed returns the samples of the curve of the current
// coefficient set.
func (s *Session) Reconstructed() []epicycle.Pair {
	return s.recon
}

// Trace returns the trace buffer.
func (s *Session) Trace() *TraceBuffer {
	return s.trace
}

// Fidelity is the area of the symmetric difference between input and
// reconstructed curve, relative to the input's area. It is NaN if the
// input curve encloses no area.
func (s *Session) Fidelity() float64 {
	return s.fidelity
}

// SetOrder replaces the coefficient set by one of order n and clears the
// trace. On error the session is left unchanged.
func (s *Session) SetOrder(n int) error {
	coeffs, err := s.engine.Compute(s.cfg.Function, n)
	if err != nil {
		tracer().Errorf("cannot change order to %d: %v", n, err)
		return err
	}
	recon, err := fourier.SampleCurve(coeffs, s.cfg.Samples)
	if err != nil {
		return err
	}
	s.order, s.coeffs, s.recon = n, coeffs, recon
	s.trace.Reset()
	if s.cfg.Backfill {
		s.backfill()
	}
	s.fidelity = s.measure()
	tracer().Infof("order N=%d, %d coefficients, fidelity %.4f", n, len(coeffs), s.fidelity)
	for _, f := range s.onChange {
		f(s)
	}
	return nil
}

// OnOrderChange registers f to be called after every successful change of
// the truncation order.
func (s *Session) OnOrderChange(f func(*Session)) {
	s.onChange = append(s.onChange, f)
}

// Increase raises the truncation order by one.
func (s *Session) Increase() error {
	return s.SetOrder(s.order + 1)
}

// Decrease lowers the truncation order by one. At order 0 it fails with
// fourier.ErrNegativeOrder.
func (s *Session) Decrease() error {
	return s.SetOrder(s.order - 1)
}

// Advance produces the frame for the current time, records the chain's tip
// in the trace and then moves time forward by dt·Speed. Past the end of a
// period, time wraps to 0 and the trace is cleared.
func (s *Session) Advance(dt float64) (Frame, error) {
	chain, err := fourier.BuildChain(s.coeffs, s.t)
	if err != nil {
		return Frame{}, err
	}
	s.trace.Append(chain.Tip())
	frame := Frame{
		T:             s.t,
		Order:         s.order,
		Input:         s.input,
		Reconstructed: s.recon,
		Trace:         s.trace.Points(),
		Chain:         chain,
		Arrows:        chain.Arrows(),
		Fidelity:      s.fidelity,
	}
	s.t += dt * s.cfg.Speed
	if s.t > s.cfg.Period {
		tracer().Debugf("period complete after %d frames", s.trace.Len())
		s.t = 0
		s.trace.Reset()
	}
	return frame, nil
}

// backfill re-traces the path from the start of the current curve period
// to the current time, using the static curve sample spacing, so that an
// order change does not blank the trace. It adds at most Samples points.
func (s *Session) backfill() {
	phase := math.Mod(s.t, 1)
	dt := 1 / float64(s.cfg.Samples)
	for i := 0; i < s.cfg.Samples && float64(i)*dt < phase; i++ {
		p, _ := fourier.Evaluate(s.coeffs, float64(i)*dt)
		s.trace.Append(p)
	}
}

func (s *Session) measure() float64 {
	r, err := polygon.RelativeDifference(s.inputPg, polygon.FromPoints(s.recon))
	if err != nil {
		tracer().Debugf("fidelity not available: %v", err)
		return math.NaN()
	}
	return r
}
