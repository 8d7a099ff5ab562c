package main

import (
	"context"

	"git.sr.ht/~rockorager/termpaint"
	"github.com/gdamore/tcell/v2"
)

// watchScreen polls s for input. The screen runs the terminal in raw mode,
// so Ctrl-C arrives as a key event rather than SIGINT: it and Escape call
// stop. Resizes are delivered on the returned channel, which is closed once
// the screen is finalized.
func watchScreen(ctx context.Context, stop context.CancelFunc, s tcell.Screen) <-chan termpaint.Size {
	sizes := make(chan termpaint.Size, 1)
	go func() {
		defer close(sizes)
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if quits(ev) {
					stop()
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				select {
				case sizes <- termpaint.Size{Cols: cols, Rows: rows}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return sizes
}

func quits(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape
}
