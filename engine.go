package termpaint

import (
	"io"
	"log"
	"os"
	"runtime"
)

// Engine paints regions onto one terminal through a Backend. It owns the
// backend's terminal handle.
//
// An Engine is not safe for concurrent use. One goroutine renders; others
// hand it work, for example sizes from NotifyResize.
type Engine struct {
	Logger *log.Logger

	backend   Backend
	state     State
	mode      mode
	snapshot  Snapshot
	cols      int
	rows      int
	sizeSet   bool
	fillGlyph string
	err       error
}

type resizer interface {
	resize(cols, rows int)
}

// New returns an Engine on b, snapshotting the ambient colors and cursor
// visibility it will restore on teardown
func New(b Backend, opts ...Option) (*Engine, error) {
	if b == nil {
		return nil, initError("no backend")
	}
	e := &Engine{
		Logger:    log.New(io.Discard, "", log.Flags()),
		backend:   b,
		state:     StateActive,
		fillGlyph: string(FillGlyph),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sizeSet {
		e.Resize(e.cols, e.rows)
	} else {
		e.cols, e.rows = b.Size()
	}
	e.snapshot = Snapshot{
		Ambient:       b.Ambient(),
		CursorVisible: b.CursorVisible(),
	}
	if !e.snapshot.CursorVisible {
		e.mode |= civis
	}
	e.Logger.Printf("engine active: %dx%d, ambient %+v", e.cols, e.rows, e.snapshot.Ambient)
	return e, nil
}

// Open returns an Engine on the process's terminal: the console on Windows,
// standard output elsewhere
func Open(opts ...Option) (*Engine, error) {
	var (
		b   Backend
		err error
	)
	if runtime.GOOS == "windows" {
		var api ConsoleAPI
		if api, err = SystemConsole(); err != nil {
			return nil, err
		}
		b, err = NewConsole(api)
	} else {
		b, err = NewTerminal(os.Stdout)
	}
	if err != nil {
		return nil, err
	}
	return New(b, opts...)
}

// State returns the current session state
func (e *Engine) State() State {
	return e.state
}

// Snapshot returns the terminal state captured at construction
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot
}

// CursorVisible reports whether the engine last left the cursor visible. It
// tracks what was issued to the backend: on a buffered backend the sequence
// reaches the terminal only at the next Refresh, and a failed Refresh does not
// roll it back. State follows the same rule for the alternate screen.
func (e *Engine) CursorVisible() bool {
	return e.mode&civis == 0
}

// Resolve returns the backend code for c in role r. Default resolves to the
// ambient snapshot.
func (e *Engine) Resolve(c Color, r Role) int {
	return e.backend.Palette().Resolve(c, r, e.snapshot.Ambient)
}

func (e *Engine) live(op string) error {
	if e.state == StateTornDown {
		e.Logger.Printf("%s: %v", op, ErrTornDown)
		return ErrTornDown
	}
	return nil
}

func (e *Engine) call(op string, fn func() error) error {
	if err := e.live(op); err != nil {
		return err
	}
	if err := fn(); err != nil {
		e.Logger.Printf("%s: %v", op, err)
		return ioError(op, err)
	}
	return nil
}

// MoveCursor positions the cursor at pos. Positions are not checked against
// the screen size.
func (e *Engine) MoveCursor(pos Coordinate) error {
	return e.call("move cursor", func() error {
		return e.backend.MoveCursor(pos)
	})
}

// SetPaintMode applies fg and bg to subsequently written text
func (e *Engine) SetPaintMode(fg, bg Color) error {
	return e.call("set paint mode", func() error {
		return e.backend.SetPaintMode(fg, bg)
	})
}

// ResetPaintMode restores the ambient attributes in effect at construction
func (e *Engine) ResetPaintMode() error {
	return e.call("reset paint mode", e.backend.ResetPaintMode)
}

// ScreenSize returns the last known columns and rows. It does not query the
// terminal.
func (e *Engine) ScreenSize() (int, int) {
	return e.cols, e.rows
}

// Resize records a new terminal size supplied by the host
func (e *Engine) Resize(cols, rows int) {
	e.cols = cols
	e.rows = rows
	if r, ok := e.backend.(resizer); ok {
		r.resize(cols, rows)
	}
}

// Clear erases the visible screen. The cursor position afterwards depends on
// the backend.
func (e *Engine) Clear() error {
	return e.call("clear", e.backend.Clear)
}

// EnterAlternateScreen switches to the alternate screen buffer. It does
// nothing if the alternate screen is already active. Console backends have no
// alternate buffer and only the state changes.
func (e *Engine) EnterAlternateScreen() error {
	if e.mode&smcup != 0 {
		return e.live("enter alternate screen")
	}
	err := e.call("enter alternate screen", e.backend.EnterAlternateScreen)
	if err != nil {
		return err
	}
	e.mode |= smcup
	e.state = StateAlternate
	e.Logger.Printf("state: %v", e.state)
	return nil
}

// ExitAlternateScreen switches back to the primary screen buffer
func (e *Engine) ExitAlternateScreen() error {
	if e.mode&smcup == 0 {
		return e.live("exit alternate screen")
	}
	err := e.call("exit alternate screen", e.backend.ExitAlternateScreen)
	if err != nil {
		return err
	}
	e.mode &^= smcup
	e.state = StateActive
	e.Logger.Printf("state: %v", e.state)
	return nil
}

func (e *Engine) setCursorVisible(visible bool) error {
	if e.CursorVisible() == visible {
		return e.live("set cursor visibility")
	}
	err := e.call("set cursor visibility", func() error {
		return e.backend.SetCursorVisible(visible)
	})
	if err != nil {
		return err
	}
	if visible {
		e.mode &^= civis
	} else {
		e.mode |= civis
	}
	return nil
}

func (e *Engine) HideCursor() error {
	return e.setCursorVisible(false)
}

func (e *Engine) ShowCursor() error {
	return e.setCursorVisible(true)
}

// Refresh flushes buffered output to the terminal
func (e *Engine) Refresh() error {
	return e.call("refresh", e.backend.Flush)
}

// Draw paints r: the cursor moves to its origin, the paint mode is set to its
// colors and its text is written. Filled blocks are painted one cell at a
// time, clipped to the screen size. Regions with inverted bounds and empty
// strings paint nothing.
func (e *Engine) Draw(r Region) error {
	if err := e.live("draw"); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		e.Logger.Printf("draw %v: %v", r, err)
		return nil
	}
	if r.IsFill() {
		return e.drawFill(r)
	}
	if r.Empty() {
		return nil
	}
	return e.paint(r)
}

// DrawAll draws regions in order, stopping at the first failure
func (e *Engine) DrawAll(regions ...Region) error {
	for _, r := range regions {
		if err := e.Draw(r); err != nil {
			return err
		}
	}
	return nil
}

// drawFill paints each cell of a filled block. When the screen size is known
// the block is clipped to it; cells off the screen are never painted.
func (e *Engine) drawFill(r Region) error {
	lo, hi := r.Origin(), r.Endpoint()
	if e.cols > 0 && e.rows > 0 {
		lo = Coordinate{Col: max(lo.Col, 1), Row: max(lo.Row, 1)}
		hi = Coordinate{Col: min(hi.Col, e.cols), Row: min(hi.Row, e.rows)}
	}
	cell := r.WithText(e.fillGlyph)
	var err error
	eachCell(lo, hi, func(c Coordinate) bool {
		err = e.paint(cell.WithOrigin(c).WithEndpoint(c))
		return err == nil
	})
	return err
}

func (e *Engine) paint(r Region) error {
	if err := e.MoveCursor(r.Origin()); err != nil {
		return err
	}
	if err := e.SetPaintMode(r.Foreground(), r.Background()); err != nil {
		return err
	}
	return e.call("write text", func() error {
		return e.backend.WriteText(r.Text())
	})
}

// Close tears the session down, if PostProcess has not already done so, and
// releases the backend
func (e *Engine) Close() error {
	err := e.teardown()
	if cerr := e.backend.Close(); cerr != nil && err == nil {
		err = ioError("close", cerr)
	}
	return err
}
