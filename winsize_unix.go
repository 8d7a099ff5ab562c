//go:build unix

package termpaint

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// GetWinSize queries the size of the terminal on f
func GetWinSize(f *os.File) (Size, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, err
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, nil
}

// NotifyResize delivers the size of the terminal on f each time the window
// changes, until ctx is done. Only the latest size is kept if the receiver
// falls behind. The receiver passes it to Engine.Resize.
func NotifyResize(ctx context.Context, f *os.File) <-chan Size {
	ch := make(chan Size, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	go func() {
		defer close(ch)
		defer signal.Stop(sig)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				sz, err := GetWinSize(f)
				if err != nil || sz.Cols == 0 || sz.Rows == 0 {
					continue
				}
				select {
				case ch <- sz:
				default:
					// replace the pending size
					select {
					case <-ch:
					default:
					}
					ch <- sz
				}
			}
		}
	}()
	return ch
}
