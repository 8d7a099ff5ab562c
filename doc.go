// Package termpaint paints colored strings and filled blocks onto a character
// terminal.
//
// An Engine drives one of three backends: an ANSI escape stream (NewANSI,
// NewTerminal), a handle-based console (NewConsole) or a tcell.Screen
// (NewScreen). Open picks the right one for the running process. Screen
// content is described with immutable Region values; the engine moves the
// cursor, sets the paint mode and writes text for each one.
//
// A rendering session is bracketed by the PreProcess and PostProcess
// manipulators:
//
//	e, err := termpaint.Open()
//	if err != nil {
//		return err
//	}
//	defer e.Close()
//	e.Chain(
//		termpaint.PreProcess,
//		termpaint.DrawRegion(termpaint.NewColoredString(
//			termpaint.Coordinate{Col: 1, Row: 1}, "hello", termpaint.Green, termpaint.Default)),
//		termpaint.Refresh,
//	)
//	if err := e.Err(); err != nil {
//		return err
//	}
//
// Coordinates are 1-based: column 1, row 1 is the top left cell.
package termpaint
