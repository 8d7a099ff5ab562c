package termpaint

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
)

// FillGlyph is painted into every cell of a filled rectangle
const FillGlyph = ' '

// Coordinate is a 1-based cell position. Columns grow rightward, rows grow
// downward.
type Coordinate struct {
	Col int
	Row int
}

// Add returns the componentwise sum of c and o
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

type regionKind uint8

const (
	kindText regionKind = iota
	kindFill
)

// Region is a rectangle of cells with a text payload and a color pair. Origin
// and endpoint are inclusive bounds. Regions are values: the With* methods
// return modified copies and never touch the receiver.
type Region struct {
	origin   Coordinate
	endpoint Coordinate
	text     string
	fg       Color
	bg       Color
	kind     regionKind
}

// NewRegion returns a generic styled region. A region with no text and
// bounds spanning more than one cell is a filled block.
func NewRegion(origin, endpoint Coordinate, text string, fg, bg Color) Region {
	r := Region{
		origin:   origin,
		endpoint: endpoint,
		text:     text,
		fg:       fg,
		bg:       bg,
	}
	if text == "" && origin != endpoint {
		r.kind = kindFill
	}
	return r
}

// NewRect returns a block filled with bg. Its foreground is always Default.
func NewRect(origin, endpoint Coordinate, bg Color) Region {
	return Region{
		origin:   origin,
		endpoint: endpoint,
		text:     string(FillGlyph),
		fg:       Default,
		bg:       bg,
		kind:     kindFill,
	}
}

// NewColoredString returns a single-line region whose endpoint is derived from
// the display width of text. An empty string occupies its origin cell and
// paints nothing.
func NewColoredString(origin Coordinate, text string, fg, bg Color) Region {
	end := origin
	if w := runewidth.StringWidth(text); w > 0 {
		end.Col += w - 1
	}
	return Region{
		origin:   origin,
		endpoint: end,
		text:     text,
		fg:       fg,
		bg:       bg,
	}
}

// Offset returns a pure offset for use with Translate
func Offset(dcol, drow int) Region {
	c := Coordinate{Col: dcol, Row: drow}
	return Region{origin: c, endpoint: c}
}

func (r Region) Origin() Coordinate   { return r.origin }
func (r Region) Endpoint() Coordinate { return r.endpoint }
func (r Region) Text() string         { return r.text }
func (r Region) Foreground() Color    { return r.fg }
func (r Region) Background() Color    { return r.bg }

// IsFill reports whether every cell of r is painted with the fill glyph
func (r Region) IsFill() bool {
	return r.kind == kindFill
}

// Empty reports whether drawing r paints nothing
func (r Region) Empty() bool {
	return r.kind == kindText && r.text == ""
}

// Width is the number of columns spanned by r
func (r Region) Width() int {
	return r.endpoint.Col - r.origin.Col + 1
}

// Height is the number of rows spanned by r
func (r Region) Height() int {
	return r.endpoint.Row - r.origin.Row + 1
}

// Validate returns ErrInvalidGeometry if r's endpoint precedes its origin
func (r Region) Validate() error {
	if r.endpoint.Col < r.origin.Col || r.endpoint.Row < r.origin.Row {
		return fmt.Errorf("%w: %v..%v", ErrInvalidGeometry, r.origin, r.endpoint)
	}
	return nil
}

func (r Region) WithOrigin(c Coordinate) Region {
	r.origin = c
	return r
}

func (r Region) WithEndpoint(c Coordinate) Region {
	r.endpoint = c
	return r
}

func (r Region) WithText(s string) Region {
	r.text = s
	return r
}

func (r Region) WithForeground(c Color) Region {
	r.fg = c
	return r
}

func (r Region) WithBackground(c Color) Region {
	r.bg = c
	return r
}

// Covers reports whether o lies entirely inside r
func (r Region) Covers(o Region) bool {
	return r.origin.Col <= o.origin.Col &&
		r.endpoint.Col >= o.endpoint.Col &&
		r.origin.Row <= o.origin.Row &&
		r.endpoint.Row >= o.endpoint.Row
}

// Overlaps reports whether r and o share at least one cell. Regions touching
// along an edge overlap.
func (r Region) Overlaps(o Region) bool {
	return r.origin.Col <= o.endpoint.Col &&
		r.endpoint.Col >= o.origin.Col &&
		r.origin.Row <= o.endpoint.Row &&
		r.endpoint.Row >= o.origin.Row
}

// Translate returns r moved by o: origins are summed and endpoints are summed.
// Text and colors come from r.
func (r Region) Translate(o Region) Region {
	r.origin = r.origin.Add(o.origin)
	r.endpoint = r.endpoint.Add(o.endpoint)
	return r
}

// Cells returns one single-cell region per cell of a filled block, columns
// outer and rows inner. It returns nil for anything else, including blocks
// with inverted bounds and blocks whose cell count overflows an int.
func (r Region) Cells() []Region {
	if r.kind != kindFill || r.Validate() != nil {
		return nil
	}
	w, okw := span(r.origin.Col, r.endpoint.Col)
	h, okh := span(r.origin.Row, r.endpoint.Row)
	if !okw || !okh || w > math.MaxInt/h {
		return nil
	}
	glyph := r.text
	if glyph == "" {
		glyph = string(FillGlyph)
	}
	cells := make([]Region, 0, w*h)
	eachCell(r.origin, r.endpoint, func(c Coordinate) bool {
		cells = append(cells, Region{
			origin:   c,
			endpoint: c,
			text:     glyph,
			fg:       r.fg,
			bg:       r.bg,
		})
		return true
	})
	return cells
}

// span returns the number of cells from lo to hi inclusive, with false if
// that does not fit in an int
func span(lo, hi int) (int, bool) {
	d := hi - lo
	if d < 0 || d == math.MaxInt {
		return 0, false
	}
	return d + 1, true
}

// eachCell calls fn for every cell from lo to hi inclusive, columns outer and
// rows inner, until fn returns false. Bounds at the edges of the int range
// do not wrap.
func eachCell(lo, hi Coordinate, fn func(Coordinate) bool) {
	if hi.Col < lo.Col || hi.Row < lo.Row {
		return
	}
	for col := lo.Col; ; col++ {
		for row := lo.Row; ; row++ {
			if !fn(Coordinate{Col: col, Row: row}) {
				return
			}
			if row == hi.Row {
				break
			}
		}
		if col == hi.Col {
			break
		}
	}
}

func (r Region) String() string {
	kind := "text"
	if r.kind == kindFill {
		kind = "fill"
	}
	return fmt.Sprintf("%s %v..%v %q %v/%v", kind, r.origin, r.endpoint, r.text, r.fg, r.bg)
}
