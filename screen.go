package termpaint

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cursor tracks the tcell screen cursor. tcell positions are 0-indexed.
type cursor struct {
	attrs   tcell.Style
	col     int
	row     int
	visible bool
}

// screenBackend paints onto a tcell.Screen. tcell owns the alternate screen
// for the lifetime of the screen, so entering and leaving it are no-ops here.
type screenBackend struct {
	s       tcell.Screen
	cursor  cursor
	style   tcell.Style
	ambient Ambient
	fg      tcell.Color
	bg      tcell.Color
}

// ScreenOption configures a screen backend
type ScreenOption func(*screenBackend)

// WithScreenStyle sets the style the screen is cleared with. Its colors become
// the ambient colors that Default resolves to.
func WithScreenStyle(st tcell.Style) ScreenOption {
	return func(b *screenBackend) {
		b.style = st
	}
}

// NewScreen initializes s and returns a Backend that paints on it
func NewScreen(s tcell.Screen, opts ...ScreenOption) (Backend, error) {
	if s == nil {
		return nil, initError("no screen")
	}
	b := &screenBackend{
		s:     s,
		style: tcell.StyleDefault.Foreground(defaultForeground()).Background(defaultBackground()),
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := s.Init(); err != nil {
		return nil, initError("init screen: %v", err)
	}
	s.SetStyle(b.style)
	b.fg, b.bg, _ = b.style.Decompose()
	b.ambient = Ambient{
		Foreground: screenCode(b.fg),
		Background: screenCode(b.bg),
	}
	b.cursor.attrs = b.style
	b.cursor.visible = true
	return b, nil
}

func (b *screenBackend) color(c Color, r Role) tcell.Color {
	if c == Default {
		if r == Foreground {
			return b.fg
		}
		return b.bg
	}
	return tcell.PaletteColor(ScreenPalette.Resolve(c, r, b.ambient))
}

func (b *screenBackend) MoveCursor(pos Coordinate) error {
	b.cursor.col = pos.Col - 1
	b.cursor.row = pos.Row - 1
	if b.cursor.visible {
		b.s.ShowCursor(b.cursor.col, b.cursor.row)
	}
	return nil
}

func (b *screenBackend) SetPaintMode(fg, bg Color) error {
	b.cursor.attrs = tcell.StyleDefault.
		Foreground(b.color(fg, Foreground)).
		Background(b.color(bg, Background))
	return nil
}

func (b *screenBackend) ResetPaintMode() error {
	b.cursor.attrs = b.style
	return nil
}

// WriteText places s cell by cell from the cursor, advancing by each rune's
// display width. Cells outside the screen are dropped by tcell.
func (b *screenBackend) WriteText(s string) error {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		b.s.SetContent(b.cursor.col, b.cursor.row, r, nil, b.cursor.attrs)
		b.cursor.col += w
	}
	return nil
}

func (b *screenBackend) Clear() error {
	b.s.Clear()
	return nil
}

func (b *screenBackend) EnterAlternateScreen() error { return nil }
func (b *screenBackend) ExitAlternateScreen() error  { return nil }

func (b *screenBackend) SetCursorVisible(visible bool) error {
	if visible {
		b.s.ShowCursor(b.cursor.col, b.cursor.row)
	} else {
		b.s.HideCursor()
	}
	b.cursor.visible = visible
	return nil
}

func (b *screenBackend) CursorVisible() bool {
	return b.cursor.visible
}

func (b *screenBackend) Flush() error {
	b.s.Show()
	return nil
}

func (b *screenBackend) Size() (int, int) {
	return b.s.Size()
}

func (b *screenBackend) Palette() Palette {
	return ScreenPalette
}

func (b *screenBackend) Ambient() Ambient {
	return b.ambient
}

func (b *screenBackend) Close() error {
	b.s.Fini()
	return nil
}
