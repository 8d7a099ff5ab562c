package termpaint

// Backend is the set of terminal control actions an Engine sequences. Each
// platform control model (an escape-sequence stream, a handle-based console
// API, a tcell screen) implements it once.
//
// Coordinates passed to a Backend are 1-based. Backends do not check them
// against Size; positions outside the screen are clamped or ignored, never
// fatal.
type Backend interface {
	MoveCursor(pos Coordinate) error

	// SetPaintMode applies fg and bg to subsequently written text
	SetPaintMode(fg, bg Color) error

	// ResetPaintMode restores the attributes in effect at construction
	ResetPaintMode() error

	WriteText(s string) error
	Clear() error

	EnterAlternateScreen() error
	ExitAlternateScreen() error

	SetCursorVisible(visible bool) error
	CursorVisible() bool

	// Flush pushes buffered output to the terminal
	Flush() error

	// Size returns the columns and rows last known to the backend
	Size() (cols, rows int)

	Palette() Palette
	Ambient() Ambient

	// Close releases the terminal handle
	Close() error
}
