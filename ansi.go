package termpaint

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

var (
	csi             = []byte("\x1b[")
	csiClear        = []byte("\x1b[2J")
	csiSGR0         = []byte("\x1b[0m")
	csiCursorHide   = []byte("\x1b[?25l")
	csiCursorShow   = []byte("\x1b[?25h")
	csiAltScreenOn  = []byte("\x1b[?1049h")
	csiAltScreenOff = []byte("\x1b[?1049l")
)

// ansiBackend drives an xterm-compatible terminal by writing escape sequences
// to a character sink
type ansiBackend struct {
	w       *bufio.Writer
	sink    io.Writer
	cols    int
	rows    int
	visible bool
}

// NewANSI returns a Backend that writes escape sequences to w. The terminal
// has no synchronous size query over a plain stream, so cols and rows are
// supplied by the host and updated through Engine.Resize. If w has a
// Flush() error method it is called on every Refresh.
func NewANSI(w io.Writer, cols, rows int) Backend {
	return &ansiBackend{
		w:       bufio.NewWriterSize(w, 4096),
		sink:    w,
		cols:    cols,
		rows:    rows,
		visible: true,
	}
}

// NewTerminal returns an ANSI Backend on f, which must be a terminal. The size
// is queried once here.
func NewTerminal(f *os.File) (Backend, error) {
	if f == nil {
		return nil, initError("no output file")
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, initError("%s is not a terminal", f.Name())
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return nil, initError("query size of %s: %v", f.Name(), err)
	}
	return &ansiBackend{
		w:       bufio.NewWriterSize(f, 4096),
		sink:    f,
		cols:    cols,
		rows:    rows,
		visible: true,
	}, nil
}

func (b *ansiBackend) writeInt(n int) {
	var buf [20]byte
	b.w.Write(strconv.AppendInt(buf[:0], int64(n), 10))
}

// MoveCursor writes CUP in its HVP form: ESC [ row ; col f
func (b *ansiBackend) MoveCursor(pos Coordinate) error {
	b.w.Write(csi)
	b.writeInt(pos.Row)
	b.w.WriteByte(';')
	b.writeInt(pos.Col)
	return b.w.WriteByte('f')
}

func (b *ansiBackend) SetPaintMode(fg, bg Color) error {
	b.w.Write(csi)
	b.writeInt(ANSIPalette.Resolve(fg, Foreground, ANSIAmbient))
	b.w.WriteByte(';')
	b.writeInt(ANSIPalette.Resolve(bg, Background, ANSIAmbient))
	return b.w.WriteByte('m')
}

func (b *ansiBackend) ResetPaintMode() error {
	_, err := b.w.Write(csiSGR0)
	return err
}

func (b *ansiBackend) WriteText(s string) error {
	_, err := b.w.WriteString(s)
	return err
}

func (b *ansiBackend) Clear() error {
	_, err := b.w.Write(csiClear)
	return err
}

func (b *ansiBackend) EnterAlternateScreen() error {
	_, err := b.w.Write(csiAltScreenOn)
	return err
}

func (b *ansiBackend) ExitAlternateScreen() error {
	_, err := b.w.Write(csiAltScreenOff)
	return err
}

func (b *ansiBackend) SetCursorVisible(visible bool) error {
	seq := csiCursorHide
	if visible {
		seq = csiCursorShow
	}
	if _, err := b.w.Write(seq); err != nil {
		return err
	}
	b.visible = visible
	return nil
}

// CursorVisible assumes a visible cursor until told otherwise. There is no
// portable query for it.
func (b *ansiBackend) CursorVisible() bool {
	return b.visible
}

type flusher interface {
	Flush() error
}

// Flush drains the internal buffer, then the sink's own buffer if it has one.
// An *os.File is unbuffered and needs nothing more.
func (b *ansiBackend) Flush() error {
	if err := b.w.Flush(); err != nil {
		return err
	}
	if f, ok := b.sink.(flusher); ok && f != flusher(b.w) {
		return f.Flush()
	}
	return nil
}

func (b *ansiBackend) Size() (int, int) {
	return b.cols, b.rows
}

func (b *ansiBackend) resize(cols, rows int) {
	b.cols = cols
	b.rows = rows
}

func (b *ansiBackend) Palette() Palette {
	return ANSIPalette
}

func (b *ansiBackend) Ambient() Ambient {
	return ANSIAmbient
}

func (b *ansiBackend) Close() error {
	return b.Flush()
}
