package termpaint

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Color is one of the named terminal colors. The zero value is Default.
type Color uint8

const (
	// Default is the terminal's own foreground or background, whatever it
	// was when the session started. It never maps to a fixed palette entry.
	Default Color = iota
	Black
	Red
	Green
	Brown
	Blue
	Magenta
	Cyan
	White

	numColors
)

// Yellow is the dim yellow most terminals show for Brown
const Yellow = Brown

var colorNames = [numColors]string{
	Default: "default",
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Brown:   "brown",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

func (c Color) String() string {
	if c >= numColors {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Role says which channel a color is painted on
type Role uint8

const (
	Foreground Role = iota
	Background
)

// Ambient holds the platform codes of the terminal's foreground and background
// at the start of a session
type Ambient struct {
	Foreground int
	Background int
}

func (a Ambient) channel(r Role) int {
	switch r {
	case Foreground:
		return a.Foreground
	case Background:
		return a.Background
	}
	panic(fmt.Sprintf("termpaint: unknown role %d", r))
}

// Palette translates named colors into the numeric codes of one backend
type Palette struct {
	fgBase int
	bgBase int
	codes  [numColors]int
}

// Resolve returns the platform code for c painted in role r. Default resolves
// to the matching channel of a. Resolve panics on a color outside the named
// set.
func (p Palette) Resolve(c Color, r Role, a Ambient) int {
	if c >= numColors {
		panic(fmt.Sprintf("termpaint: unknown color %d", uint8(c)))
	}
	if c == Default {
		return a.channel(r)
	}
	switch r {
	case Foreground:
		return p.fgBase + p.codes[c]
	case Background:
		return p.bgBase + p.codes[c]
	}
	panic(fmt.Sprintf("termpaint: unknown role %d", r))
}

// ANSIPalette yields SGR parameters: 30+n for foregrounds, 40+n for
// backgrounds
var ANSIPalette = Palette{
	fgBase: 30,
	bgBase: 40,
	codes: [numColors]int{
		Black:   0,
		Red:     1,
		Green:   2,
		Brown:   3,
		Blue:    4,
		Magenta: 5,
		Cyan:    6,
		White:   7,
	},
}

// ANSIAmbient selects the terminal's default colors (SGR 39 and 49)
var ANSIAmbient = Ambient{Foreground: 39, Background: 49}

// ConsolePalette yields 4-bit console attribute nibbles (blue=1, green=2,
// red=4). Background nibbles are returned unshifted.
var ConsolePalette = Palette{
	codes: [numColors]int{
		Black:   0x0,
		Blue:    0x1,
		Green:   0x2,
		Cyan:    0x3,
		Red:     0x4,
		Magenta: 0x5,
		Brown:   0x6,
		White:   0x7,
	},
}

// ScreenPalette yields tcell palette indices
var ScreenPalette = Palette{
	codes: ANSIPalette.codes,
}

// screenDefault marks an ambient channel that has no palette index, either
// tcell.ColorDefault or a themed RGB color
const screenDefault = -1

// screenCode returns the palette index of c or screenDefault
func screenCode(c tcell.Color) int {
	if !c.Valid() || c.IsRGB() {
		return screenDefault
	}
	return int(c - tcell.ColorValid)
}

func defaultBackground() tcell.Color {
	_, bg, _ := tcell.StyleDefault.Decompose()
	return bg
}

func defaultForeground() tcell.Color {
	fg, _, _ := tcell.StyleDefault.Decompose()
	return fg
}
