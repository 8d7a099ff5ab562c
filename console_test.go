package termpaint

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConsole keeps the state a real console handle would and logs every
// mutating call
type fakeConsole struct {
	info   ScreenBufferInfo
	cursor CursorInfo
	calls  []string
	err    error
	closed bool
}

func newFakeConsole(attr uint16) *fakeConsole {
	return &fakeConsole{
		info: ScreenBufferInfo{
			Size:       ConsoleCoord{X: 80, Y: 300},
			Attributes: attr,
			Window:     ConsoleRect{Left: 0, Top: 10, Right: 79, Bottom: 34},
		},
		cursor: CursorInfo{Size: 25, Visible: true},
	}
}

func (c *fakeConsole) logf(format string, args ...interface{}) error {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
	return c.err
}

func (c *fakeConsole) ScreenBufferInfo() (ScreenBufferInfo, error) {
	return c.info, c.err
}

func (c *fakeConsole) SetCursorPosition(pos ConsoleCoord) error {
	c.info.Cursor = pos
	return c.logf("pos %d,%d", pos.X, pos.Y)
}

func (c *fakeConsole) SetTextAttribute(attr uint16) error {
	c.info.Attributes = attr
	return c.logf("attr %#04x", attr)
}

func (c *fakeConsole) FillCharacter(ch rune, n uint32, at ConsoleCoord) error {
	return c.logf("fill %q %d at %d,%d", ch, n, at.X, at.Y)
}

func (c *fakeConsole) FillAttribute(attr uint16, n uint32, at ConsoleCoord) error {
	return c.logf("fill %#04x %d at %d,%d", attr, n, at.X, at.Y)
}

func (c *fakeConsole) CursorInfo() (CursorInfo, error) {
	return c.cursor, c.err
}

func (c *fakeConsole) SetCursorInfo(info CursorInfo) error {
	c.cursor = info
	return c.logf("cursor %d %t", info.Size, info.Visible)
}

func (c *fakeConsole) WriteString(s string) error {
	return c.logf("write %q", s)
}

func (c *fakeConsole) Close() error {
	c.closed = true
	return nil
}

func newConsoleEngine(t *testing.T, api *fakeConsole) *Engine {
	t.Helper()
	b, err := NewConsole(api)
	require.NoError(t, err)
	return newEngine(t, b)
}

func TestConsoleInit(t *testing.T) {
	api := newFakeConsole(0x1e)
	api.cursor.Visible = false
	e := newConsoleEngine(t, api)

	cols, rows := e.ScreenSize()
	assert.Equal(t, 80, cols)
	assert.Equal(t, 25, rows)
	assert.Equal(t, Snapshot{
		Ambient:       Ambient{Foreground: 0xe, Background: 0x1},
		CursorVisible: false,
	}, e.Snapshot())
	assert.Empty(t, api.calls)
}

func TestConsoleInitFailure(t *testing.T) {
	api := newFakeConsole(0x07)
	api.err = errors.New("invalid handle")
	_, err := NewConsole(api)
	assert.ErrorIs(t, err, ErrInitialization)

	_, err = NewConsole(nil)
	assert.ErrorIs(t, err, ErrInitialization)
}

func TestConsoleDraw(t *testing.T) {
	api := newFakeConsole(0x07)
	e := newConsoleEngine(t, api)

	require.NoError(t, e.Draw(NewColoredString(at(3, 2), "hi", Red, Blue)))
	require.NoError(t, e.Draw(NewRect(at(1, 1), at(1, 2), Green)))
	want := []string{
		"pos 2,1", "attr 0x14", `write "hi"`,
		"pos 0,0", "attr 0x27", `write " "`,
		"pos 0,1", "attr 0x27", `write " "`,
	}
	if diff := cmp.Diff(want, api.calls); diff != "" {
		t.Errorf("console calls mismatch (-want +got):\n%s", diff)
	}
}

func TestConsoleDefaultFollowsTheme(t *testing.T) {
	api := newFakeConsole(0x1e)
	e := newConsoleEngine(t, api)

	assert.Equal(t, 0xe, e.Resolve(Default, Foreground))
	assert.Equal(t, 0x1, e.Resolve(Default, Background))

	require.NoError(t, e.SetPaintMode(Default, Default))
	assert.Equal(t, uint16(0x1e), api.info.Attributes)
	require.NoError(t, e.SetPaintMode(Default, Red))
	assert.Equal(t, uint16(0x4e), api.info.Attributes)
}

func TestConsoleKeepsHighAttributeBits(t *testing.T) {
	api := newFakeConsole(0x8007)
	e := newConsoleEngine(t, api)
	require.NoError(t, e.SetPaintMode(Cyan, Magenta))
	assert.Equal(t, uint16(0x8053), api.info.Attributes)
}

func TestConsoleMoveClamps(t *testing.T) {
	tests := []struct {
		name     string
		pos      Coordinate
		expected string
	}{
		{"inside", at(10, 5), "pos 9,4"},
		{"negative", at(0, -4), "pos 0,0"},
		{"past last column", at(81, 1), "pos 79,0"},
		{"past last row", at(1, 301), "pos 0,299"},
		{"past int16", at(40000, 70000), "pos 79,299"},
		{"int extremes", at(math.MinInt, math.MaxInt), "pos 0,299"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := newFakeConsole(0x07)
			e := newConsoleEngine(t, api)
			require.NoError(t, e.MoveCursor(test.pos))
			assert.Equal(t, []string{test.expected}, api.calls)
		})
	}
}

func TestConsoleClear(t *testing.T) {
	api := newFakeConsole(0x1e)
	e := newConsoleEngine(t, api)
	require.NoError(t, e.SetPaintMode(Red, Black))
	api.calls = nil

	require.NoError(t, e.Clear())
	assert.Equal(t, []string{
		"fill ' ' 24000 at 0,0",
		"fill 0x1e 24000 at 0,0",
	}, api.calls)
}

func TestConsoleSession(t *testing.T) {
	api := newFakeConsole(0x1e)
	e := newConsoleEngine(t, api)

	require.NoError(t, PreProcess(e).Err())
	assert.Equal(t, StateAlternate, e.State())
	assert.False(t, api.cursor.Visible)

	require.NoError(t, e.Draw(NewColoredString(at(10, 5), "boo", White, Red)))
	assert.Equal(t, uint16(0x47), api.info.Attributes)

	require.NoError(t, PostProcess(e).Err())
	assert.Equal(t, StateTornDown, e.State())
	assert.Equal(t, uint16(0x1e), api.info.Attributes)
	assert.True(t, api.cursor.Visible)
	assert.Equal(t, uint32(25), api.cursor.Size)
	assert.Equal(t, ConsoleCoord{}, api.info.Cursor)

	require.NoError(t, e.Close())
	assert.True(t, api.closed)
}

func TestConsoleFailure(t *testing.T) {
	api := newFakeConsole(0x07)
	e := newConsoleEngine(t, api)
	api.err = errors.New("handle closed")

	err := e.MoveCursor(at(1, 1))
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "move cursor", ioErr.Op)
}
