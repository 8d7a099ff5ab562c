package termpaint

// ConsoleCoord is a zero-based console buffer position
type ConsoleCoord struct {
	X int16
	Y int16
}

// ConsoleRect is an inclusive rectangle of console buffer cells
type ConsoleRect struct {
	Left   int16
	Top    int16
	Right  int16
	Bottom int16
}

// ScreenBufferInfo mirrors the console screen buffer query
type ScreenBufferInfo struct {
	Size       ConsoleCoord
	Cursor     ConsoleCoord
	Attributes uint16
	Window     ConsoleRect
}

// CursorInfo mirrors the console cursor query
type CursorInfo struct {
	Size    uint32
	Visible bool
}

// ConsoleAPI is the handle-based console control surface. The Windows
// implementation is returned by SystemConsole.
type ConsoleAPI interface {
	ScreenBufferInfo() (ScreenBufferInfo, error)
	SetCursorPosition(pos ConsoleCoord) error
	SetTextAttribute(attr uint16) error
	FillCharacter(ch rune, n uint32, at ConsoleCoord) error
	FillAttribute(attr uint16, n uint32, at ConsoleCoord) error
	CursorInfo() (CursorInfo, error)
	SetCursorInfo(info CursorInfo) error
	WriteString(s string) error
	Close() error
}

const (
	colorMask  = 0x00ff
	nibbleMask = 0x0f
)

// consoleBackend paints through a console handle. The text attribute is
// persistent: it stays in effect until set again.
type consoleBackend struct {
	api     ConsoleAPI
	initial uint16
	ambient Ambient
	visible bool
	cols    int
	rows    int
	buffer  ConsoleCoord
}

// NewConsole returns a Backend on api. The initial text attribute and cursor
// visibility are read once here and restored by ResetPaintMode and the
// engine's teardown. There is no alternate screen buffer on this backend.
func NewConsole(api ConsoleAPI) (Backend, error) {
	if api == nil {
		return nil, initError("no console")
	}
	info, err := api.ScreenBufferInfo()
	if err != nil {
		return nil, initError("query screen buffer: %v", err)
	}
	cur, err := api.CursorInfo()
	if err != nil {
		return nil, initError("query cursor: %v", err)
	}
	b := &consoleBackend{
		api:     api,
		initial: info.Attributes,
		ambient: Ambient{
			Foreground: int(info.Attributes & nibbleMask),
			Background: int(info.Attributes >> 4 & nibbleMask),
		},
		visible: cur.Visible,
		buffer:  info.Size,
	}
	b.cols, b.rows = windowSize(info)
	return b, nil
}

func windowSize(info ScreenBufferInfo) (int, int) {
	cols := int(info.Window.Right) - int(info.Window.Left) + 1
	rows := int(info.Window.Bottom) - int(info.Window.Top) + 1
	if cols <= 0 || rows <= 0 {
		return int(info.Size.X), int(info.Size.Y)
	}
	return cols, rows
}

// clamp converts the 1-based n to a 0-based index in [0, size-1]
func clamp(n int, size int16) int16 {
	switch {
	case n < 1 || size <= 0:
		return 0
	case n > int(size):
		return size - 1
	}
	return int16(n - 1)
}

// MoveCursor clamps pos to the screen buffer, which the console requires
func (b *consoleBackend) MoveCursor(pos Coordinate) error {
	return b.api.SetCursorPosition(ConsoleCoord{
		X: clamp(pos.Col, b.buffer.X),
		Y: clamp(pos.Row, b.buffer.Y),
	})
}

func (b *consoleBackend) attribute(fg, bg Color) uint16 {
	f := ConsolePalette.Resolve(fg, Foreground, b.ambient)
	g := ConsolePalette.Resolve(bg, Background, b.ambient)
	return b.initial&^colorMask | uint16(f&nibbleMask) | uint16(g&nibbleMask)<<4
}

func (b *consoleBackend) SetPaintMode(fg, bg Color) error {
	return b.api.SetTextAttribute(b.attribute(fg, bg))
}

func (b *consoleBackend) ResetPaintMode() error {
	return b.api.SetTextAttribute(b.initial)
}

func (b *consoleBackend) WriteText(s string) error {
	return b.api.WriteString(s)
}

// Clear blanks the whole screen buffer with the initial attribute
func (b *consoleBackend) Clear() error {
	info, err := b.api.ScreenBufferInfo()
	if err != nil {
		return err
	}
	n := uint32(info.Size.X) * uint32(info.Size.Y)
	origin := ConsoleCoord{}
	if err := b.api.FillCharacter(FillGlyph, n, origin); err != nil {
		return err
	}
	return b.api.FillAttribute(b.initial, n, origin)
}

func (b *consoleBackend) EnterAlternateScreen() error { return nil }
func (b *consoleBackend) ExitAlternateScreen() error  { return nil }

func (b *consoleBackend) SetCursorVisible(visible bool) error {
	info, err := b.api.CursorInfo()
	if err != nil {
		return err
	}
	info.Visible = visible
	if err := b.api.SetCursorInfo(info); err != nil {
		return err
	}
	b.visible = visible
	return nil
}

func (b *consoleBackend) CursorVisible() bool {
	return b.visible
}

// Flush is a no-op: console calls take effect immediately
func (b *consoleBackend) Flush() error {
	return nil
}

func (b *consoleBackend) Size() (int, int) {
	return b.cols, b.rows
}

func (b *consoleBackend) resize(cols, rows int) {
	b.cols = cols
	b.rows = rows
}

func (b *consoleBackend) Palette() Palette {
	return ConsolePalette
}

func (b *consoleBackend) Ambient() Ambient {
	return b.ambient
}

func (b *consoleBackend) Close() error {
	return b.api.Close()
}
