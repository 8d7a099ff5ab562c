package main

import (
	"git.sr.ht/~rockorager/termpaint"
)

const (
	boxCols = 12
	boxRows = 5

	backdrop = termpaint.Black
)

// scene is a box bouncing around the screen below a title bar
type scene struct {
	cols  int
	rows  int
	title string
	box   termpaint.Region
	dcol  int
	drow  int
}

func at(col, row int) termpaint.Coordinate {
	return termpaint.Coordinate{Col: col, Row: row}
}

func newScene(cols, rows int, title string) *scene {
	s := &scene{
		title: title,
		box:   termpaint.NewRect(at(2, 3), at(1+boxCols, 2+boxRows), termpaint.Blue),
		dcol:  1,
		drow:  1,
	}
	s.resize(cols, rows)
	return s
}

// bounds is the area below the title bar the box moves in
func (s *scene) bounds() termpaint.Region {
	return termpaint.NewRect(at(1, 2), at(s.cols, s.rows), backdrop)
}

func (s *scene) titleBar() termpaint.Region {
	return termpaint.NewColoredString(at(1, 1), s.title, termpaint.White, termpaint.Blue)
}

// resize moves the box back home if it no longer fits
func (s *scene) resize(cols, rows int) {
	s.cols = cols
	s.rows = rows
	if !s.bounds().Covers(s.box) {
		home := s.bounds().Origin()
		o := s.box.Origin()
		s.box = s.box.Translate(termpaint.Offset(home.Col-o.Col, home.Row-o.Row))
	}
}

// full returns every region of the scene, backdrop first
func (s *scene) full() []termpaint.Region {
	return cull([]termpaint.Region{
		termpaint.NewRect(at(1, 1), at(s.cols, s.rows), backdrop),
		termpaint.NewRect(at(1, 1), at(s.cols, 1), termpaint.Blue),
		s.titleBar(),
		s.box,
	})
}

// step advances the box one cell, bouncing off the edges, and returns the
// regions to repaint
func (s *scene) step() []termpaint.Region {
	bounds := s.bounds()
	if !bounds.Covers(s.box) {
		return nil
	}
	if !bounds.Covers(s.box.Translate(termpaint.Offset(s.dcol, 0))) {
		s.dcol = -s.dcol
	}
	if !bounds.Covers(s.box.Translate(termpaint.Offset(0, s.drow))) {
		s.drow = -s.drow
	}
	next := s.box.Translate(termpaint.Offset(s.dcol, s.drow))
	if !bounds.Covers(next) {
		return nil
	}
	old := s.box.WithBackground(backdrop)
	s.box = next.WithBackground(s.boxColor(next))
	return cull([]termpaint.Region{old, s.box})
}

// boxColor changes when the box touches the right or bottom edge
func (s *scene) boxColor(box termpaint.Region) termpaint.Color {
	right := termpaint.NewRect(at(s.cols, 2), at(s.cols, s.rows), backdrop)
	bottom := termpaint.NewRect(at(1, s.rows), at(s.cols, s.rows), backdrop)
	if box.Overlaps(right) || box.Overlaps(bottom) {
		return termpaint.Red
	}
	return termpaint.Blue
}

// cull drops regions that a later region paints over completely
func cull(regions []termpaint.Region) []termpaint.Region {
	out := regions[:0:0]
	for i, r := range regions {
		hidden := false
		for _, above := range regions[i+1:] {
			if above.IsFill() && above.Covers(r) {
				hidden = true
				break
			}
		}
		if !hidden {
			out = append(out, r)
		}
	}
	return out
}
