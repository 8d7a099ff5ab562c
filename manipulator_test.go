package termpaint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	rec := newRecorder()
	e := newEngine(t, rec)

	got := e.Chain(
		PreProcess,
		MoveTo(at(3, 4)),
		Paint(Red, Default),
		DrawRegion(NewColoredString(at(1, 1), "x", White, Black)),
		ResetPaint,
		Refresh,
	)
	require.Same(t, e, got)
	require.NoError(t, e.Err())
	assert.Equal(t, []string{
		"smcup", "cursor", "clear",
		"move", "paint",
		"move", "paint", "write",
		"reset", "flush",
	}, rec.ops())
	assert.Equal(t, at(3, 4), rec.calls[3].Pos)
	assert.Equal(t, call{Op: "paint", Fg: Red, Bg: Default}, rec.calls[4])
}

func TestChainStopsAtError(t *testing.T) {
	broken := errors.New("gone")
	rec := newRecorder()
	rec.fail["clear"] = broken
	e := newEngine(t, rec)

	e.Chain(PreProcess, MoveTo(at(1, 1)), Refresh)
	assert.ErrorIs(t, e.Err(), broken)
	assert.Equal(t, []string{"smcup", "cursor", "clear"}, rec.ops())

	rec.calls = nil
	e.Chain(PostProcess)
	assert.Equal(t, StateTornDown, e.State())
	assert.NotEmpty(t, rec.calls)
	assert.ErrorIs(t, e.Err(), broken)

	e.ResetErr()
	assert.NoError(t, e.Err())
}

func TestManipulatorsAfterTeardown(t *testing.T) {
	rec := newRecorder()
	e := newEngine(t, rec)
	e.Chain(PreProcess, PostProcess, ClearScreen)
	assert.ErrorIs(t, e.Err(), ErrTornDown)
}

func TestShowHideCursor(t *testing.T) {
	rec := newRecorder()
	e := newEngine(t, rec)
	e.Chain(HideCursor, HideCursor, ShowCursor, ShowCursor)
	require.NoError(t, e.Err())
	assert.Equal(t, []call{
		{Op: "cursor", Visible: false},
		{Op: "cursor", Visible: true},
	}, rec.calls)
}

func TestNormalScreen(t *testing.T) {
	rec := newRecorder()
	e := newEngine(t, rec)
	e.Chain(AlternateScreen, NormalScreen)
	require.NoError(t, e.Err())
	assert.Equal(t, StateActive, e.State())
	assert.Equal(t, []string{"smcup", "rmcup"}, rec.ops())
}
