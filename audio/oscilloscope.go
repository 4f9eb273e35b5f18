/*
Package audio plays a Fourier series as sound.

An Oscilloscope turns the reconstructed curve into a stereo signal: the
left channel carries x, the right channel carries y. Fed into an XY
oscilloscope (or a visualizer in XY mode) the signal draws the curve;
played through speakers, the higher truncation orders become audible as
overtones.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/npillmayer/epicycle"
	"github.com/npillmayer/epicycle/fourier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycle'
func tracer() tracing.Trace {
	return tracing.Select("epicycle")
}

// ErrFrequency indicates a tone frequency outside (0, sample rate / 2).
var ErrFrequency = errors.New("frequency must be positive and below the Nyquist limit")

// headroom keeps the normalized signal away from clipping.
const headroom = 0.9

// Oscilloscope is a beep.Streamer tracing one period of a Fourier series
// per cycle of its tone frequency. The series is centered on its DC term
// and normalized to the range [−headroom, headroom].
//
// Stream is called from the speaker's goroutine, SetCoefficients from the
// host loop; both are synchronized.
type Oscilloscope struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	freq   float64
	phase  float64
	coeffs fourier.Coefficients
	dc     epicycle.Pair
	scale  float64
}

// NewOscilloscope creates a streamer at sample rate sr, tracing the curve
// freq times per second.
func NewOscilloscope(sr beep.SampleRate, freq float64, c fourier.Coefficients) (*Oscilloscope, error) {
	if !(freq > 0) || freq >= float64(sr)/2 {
		return nil, fmt.Errorf("%w: %g Hz at %d Hz sample rate", ErrFrequency, freq, int(sr))
	}
	o := &Oscilloscope{sr: sr, freq: freq}
	if err := o.SetCoefficients(c); err != nil {
		return nil, err
	}
	return o, nil
}

// SetCoefficients replaces the series being played.
func (o *Oscilloscope) SetCoefficients(c fourier.Coefficients) error {
	pts, err := fourier.SampleCurve(c, 256)
	if err != nil {
		return err
	}
	dc := epicycle.Pair(c.DC())
	var peak float64
	for _, p := range pts {
		p -= dc
		peak = math.Max(peak, math.Max(math.Abs(p.X()), math.Abs(p.Y())))
	}
	scale := 0.0
	if !epicycle.Is0(peak) {
		scale = headroom / peak
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.coeffs, o.dc, o.scale = c, dc, scale
	tracer().Debugf("oscilloscope plays order %d, scale %g", c.Order(), scale)
	return nil
}

// Stream fills samples with the next stretch of the signal. It never
// drains.
func (o *Oscilloscope) Stream(samples [][2]float64) (n int, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	step := o.freq / float64(o.sr)
	for i := range samples {
		p, _ := fourier.Evaluate(o.coeffs, o.phase)
		p -= o.dc
		samples[i][0] = p.X() * o.scale
		samples[i][1] = p.Y() * o.scale
		o.phase += step
		if o.phase >= 1 {
			o.phase--
		}
	}
	return len(samples), true
}

// Err always returns nil.
func (o *Oscilloscope) Err() error {
	return nil
}

// Play initializes the speaker at sample rate sr with a 100 ms buffer and
// starts playing s. Call speaker.Close (via Stop) when done.
func Play(sr beep.SampleRate, s beep.Streamer) error {
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio initialization failed: %w", err)
	}
	speaker.Play(s)
	return nil
}

// Stop halts playback and releases the audio device.
func Stop() {
	speaker.Close()
}
