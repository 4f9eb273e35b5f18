package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/epicycle/curve"
	"github.com/npillmayer/epicycle/render"
	"github.com/npillmayer/epicycle/session"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T, n int) *session.Session {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.Function = curve.Star
	cfg.Order = n
	cfg.Samples = 128
	s, err := session.New(cfg)
	require.NoError(t, err)
	return s
}

func TestHandleAction(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testSession(t, 0)
	quit, err := handleAction(s, render.ActionDecrease)
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 0, s.Order())
	_, err = handleAction(s, render.ActionIncrease)
	assert.NoError(t, err)
	assert.Equal(t, 1, s.Order())
	quit, _ = handleAction(s, render.ActionQuit)
	assert.True(t, quit)
	quit, _ = handleAction(s, render.ActionNone)
	assert.False(t, quit)
}

func TestRunHeadless(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testSession(t, 4)
	err := runHeadless(context.Background(), s, headlessConfig{enabled: true, hz: 1000, ticks: 25})
	require.NoError(t, err)
	assert.Equal(t, 25, s.Trace().Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = runHeadless(ctx, s, headlessConfig{enabled: true, hz: 1000})
	assert.True(t, errors.Is(err, context.Canceled))

	err = runHeadless(context.Background(), s, headlessConfig{enabled: true})
	assert.Error(t, err)
}

func TestRunList(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, run(session.DefaultConfig(), options{list: true}))
	err := run(session.DefaultConfig(), options{curve: "dragon"})
	assert.True(t, errors.Is(err, curve.ErrUnknownCurve))
}

func TestPumpEventsStopsWhenDone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	events := make(chan tcell.Event) // nobody receives
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		pumpEvents(screen, events, done)
		close(stopped)
	}()
	require.NoError(t, screen.PostEvent(tcell.NewEventInterrupt(nil)))
	close(done)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("event pump still blocked after done was closed")
	}
}
