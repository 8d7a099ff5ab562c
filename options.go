package termpaint

import "log"

type Option func(e *Engine)

// WithLogger sets the logger lifecycle and failure messages are written to
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.Logger = l
		}
	}
}

// WithFillGlyph sets the glyph painted into the cells of filled blocks
func WithFillGlyph(r rune) Option {
	return func(e *Engine) {
		e.fillGlyph = string(r)
	}
}

// WithScreenSize overrides the size reported by the backend at construction
func WithScreenSize(cols, rows int) Option {
	return func(e *Engine) {
		e.cols = cols
		e.rows = rows
		e.sizeSet = true
	}
}
