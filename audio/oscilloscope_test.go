package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/npillmayer/epicycle/curve"
	"github.com/npillmayer/epicycle/fourier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOscilloscopeCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := fourier.NewEngine().Compute(curve.Circle(1), 2)
	require.NoError(t, err)
	sr := beep.SampleRate(44100)
	osc, err := NewOscilloscope(sr, float64(sr)/4, c)
	require.NoError(t, err)
	samples := make([][2]float64, 5)
	n, ok := osc.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 5, n)
	want := [][2]float64{{headroom, 0}, {0, headroom}, {-headroom, 0}, {0, -headroom}, {headroom, 0}}
	for i := range want {
		assert.InDelta(t, want[i][0], samples[i][0], 1e-9, "left channel, sample %d", i)
		assert.InDelta(t, want[i][1], samples[i][1], 1e-9, "right channel, sample %d", i)
	}
	assert.NoError(t, osc.Err())
}

func TestOscilloscopeCentersDC(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := fourier.NewEngine().Compute(curve.Heart, 0)
	require.NoError(t, err)
	osc, err := NewOscilloscope(beep.SampleRate(8000), 100, c)
	require.NoError(t, err)
	samples := make([][2]float64, 64)
	osc.Stream(samples)
	for _, s := range samples {
		assert.Equal(t, [2]float64{0, 0}, s)
	}
	// swap in a richer series while playing
	c, err = fourier.NewEngine().Compute(curve.Heart, 4)
	require.NoError(t, err)
	require.NoError(t, osc.SetCoefficients(c))
	osc.Stream(samples)
	var peak float64
	for _, s := range samples {
		if s[1] > peak {
			peak = s[1]
		}
		assert.LessOrEqual(t, s[0], headroom+1e-9)
	}
	assert.Greater(t, peak, 0.0)
}

func TestOscilloscopeErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := fourier.Coefficients{0, 0, 1}
	_, err := NewOscilloscope(beep.SampleRate(8000), 0, c)
	assert.True(t, errors.Is(err, ErrFrequency))
	_, err = NewOscilloscope(beep.SampleRate(8000), 4000, c)
	assert.True(t, errors.Is(err, ErrFrequency))
	_, err = NewOscilloscope(beep.SampleRate(8000), 100, nil)
	assert.True(t, errors.Is(err, fourier.ErrEmptyCoefficients))
}
