package termpaint

// Size is a terminal size in character cells
type Size struct {
	Cols int
	Rows int
}
