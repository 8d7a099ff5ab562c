package termpaint

// Manipulator performs one engine action and returns the same engine, so
// actions chain left to right:
//
//	e.Chain(termpaint.PreProcess, termpaint.MoveTo(pos), termpaint.Refresh)
//
// A failing action records its error on the engine; see Engine.Err.
type Manipulator func(*Engine) *Engine

// Chain applies ms in order. Once an error has been recorded the remaining
// manipulators are skipped, except PostProcess, which always runs.
func (e *Engine) Chain(ms ...Manipulator) *Engine {
	for _, m := range ms {
		m(e)
	}
	return e
}

// Err returns the first error recorded by a manipulator
func (e *Engine) Err() error {
	return e.err
}

// ResetErr forgets the recorded error
func (e *Engine) ResetErr() {
	e.err = nil
}

func (e *Engine) record(err error) {
	if err != nil && e.err == nil {
		e.err = err
	}
}

func action(fn func(*Engine) error) Manipulator {
	return func(e *Engine) *Engine {
		if e.err != nil {
			return e
		}
		e.record(fn(e))
		return e
	}
}

var (
	AlternateScreen Manipulator = action((*Engine).EnterAlternateScreen)
	NormalScreen    Manipulator = action((*Engine).ExitAlternateScreen)
	ClearScreen     Manipulator = action((*Engine).Clear)
	HideCursor      Manipulator = action((*Engine).HideCursor)
	ShowCursor      Manipulator = action((*Engine).ShowCursor)
	Refresh         Manipulator = action((*Engine).Refresh)
	ResetPaint      Manipulator = action((*Engine).ResetPaintMode)
)

// MoveTo moves the cursor to pos
func MoveTo(pos Coordinate) Manipulator {
	return action(func(e *Engine) error {
		return e.MoveCursor(pos)
	})
}

// Paint sets the paint mode
func Paint(fg, bg Color) Manipulator {
	return action(func(e *Engine) error {
		return e.SetPaintMode(fg, bg)
	})
}

// DrawRegion draws r
func DrawRegion(r Region) Manipulator {
	return action(func(e *Engine) error {
		return e.Draw(r)
	})
}

// PreProcess starts a rendering session: alternate screen, hidden cursor,
// cleared screen
func PreProcess(e *Engine) *Engine {
	return e.Chain(AlternateScreen, HideCursor, ClearScreen)
}

// PostProcess ends a rendering session. It clears the screen, restores the
// cursor visibility and attributes snapshotted at construction, homes the
// cursor and returns to the primary screen buffer. Every step is attempted
// even if an earlier one fails. Calling it again does nothing.
func PostProcess(e *Engine) *Engine {
	e.record(e.teardown())
	return e
}

func (e *Engine) teardown() error {
	if e.state == StateTornDown {
		return nil
	}
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	keep(e.Clear())
	keep(e.setCursorVisible(e.snapshot.CursorVisible))
	keep(e.MoveCursor(Coordinate{Col: 1, Row: 1}))
	keep(e.ResetPaintMode())
	keep(e.ExitAlternateScreen())
	keep(e.Refresh())
	e.state = StateTornDown
	e.Logger.Printf("state: %v", e.state)
	return first
}
