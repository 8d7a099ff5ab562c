//go:build !unix

package termpaint

import (
	"context"
	"errors"
	"os"
)

// GetWinSize is not supported on this platform; console backends read the
// size from the screen buffer instead
func GetWinSize(f *os.File) (Size, error) {
	return Size{}, errors.New("termpaint: no window size query on this platform")
}

// NotifyResize returns a channel that is closed when ctx is done. No sizes are
// delivered on this platform.
func NotifyResize(ctx context.Context, f *os.File) <-chan Size {
	ch := make(chan Size)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}
