// Command termpaint-demo bounces a box around the terminal until interrupted
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.sr.ht/~rockorager/termpaint"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "termpaint-demo",
		Short: "Paint a bouncing box on the terminal",
		Long: `termpaint-demo switches to the alternate screen, hides the cursor and
bounces a box around below a title bar. The terminal is restored on exit,
on interrupt and on failure.

Settings are read from $HOME/.config/termpaint/config.toml (or --config),
then from TERMPAINT_* environment variables, then from flags.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Load(cfgFile, cmd)
			if err != nil {
				return err
			}
			logger, closer := newLogger(cfg.LogFile)
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			e, s, err := openEngine(cfg, logger)
			if err != nil {
				return err
			}
			var sizes <-chan termpaint.Size
			if s != nil {
				sizes = watchScreen(ctx, cancel, s)
			} else {
				sizes = termpaint.NotifyResize(ctx, os.Stdout)
			}
			return run(ctx, e, cfg, sizes)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/termpaint/config.toml)")
	cmd.Flags().StringP("backend", "b", "auto", "backend to paint with: auto, ansi or screen")
	cmd.Flags().DurationP("duration", "d", 0, "stop after this long (0 runs until interrupted)")
	cmd.Flags().Duration("interval", 80*time.Millisecond, "time between frames")
	cmd.Flags().String("log-file", "", "write a rotated log to this file")
	cmd.Flags().String("title", "termpaint", "text of the title bar")
	return cmd
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger logs to a rotated file, never to the terminal being painted
func newLogger(path string) (*log.Logger, io.Closer) {
	if path == "" {
		return log.New(io.Discard, "", log.Flags()), nopCloser{}
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return log.New(lj, "termpaint: ", log.LstdFlags|log.Lshortfile), lj
}

// openEngine returns the engine for the configured backend. The tcell screen
// is returned too when that backend is used, since its events must be polled.
func openEngine(cfg Config, logger *log.Logger) (*termpaint.Engine, tcell.Screen, error) {
	opts := []termpaint.Option{
		termpaint.WithLogger(logger),
		termpaint.WithFillGlyph(cfg.FillGlyph()),
	}
	switch cfg.Backend {
	case "ansi":
		b, err := termpaint.NewTerminal(os.Stdout)
		if err != nil {
			return nil, nil, err
		}
		e, err := termpaint.New(b, opts...)
		return e, nil, err
	case "screen":
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", termpaint.ErrInitialization, err)
		}
		b, err := termpaint.NewScreen(s)
		if err != nil {
			return nil, nil, err
		}
		e, err := termpaint.New(b, opts...)
		if err != nil {
			b.Close()
			return nil, nil, err
		}
		return e, s, nil
	}
	e, err := termpaint.Open(opts...)
	return e, nil, err
}

// run paints frames until ctx is done or the configured duration passes,
// applying each size received on sizes. The terminal is restored on every
// return path, panics included.
func run(ctx context.Context, e *termpaint.Engine, cfg Config, sizes <-chan termpaint.Size) (err error) {
	defer func() {
		if cerr := e.Close(); err == nil {
			err = cerr
		}
	}()

	cols, rows := e.ScreenSize()
	sc := newScene(cols, rows, cfg.Title)
	e.Chain(termpaint.PreProcess)
	for _, r := range sc.full() {
		e.Chain(termpaint.DrawRegion(r))
	}
	if err := e.Chain(termpaint.Refresh).Err(); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	var deadline <-chan time.Time
	if cfg.Duration > 0 {
		timer := time.NewTimer(cfg.Duration)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		var regions []termpaint.Region
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			return nil
		case sz, ok := <-sizes:
			if !ok {
				sizes = nil
				continue
			}
			e.Resize(sz.Cols, sz.Rows)
			sc.resize(sz.Cols, sz.Rows)
			if err := e.Clear(); err != nil {
				return err
			}
			regions = sc.full()
		case <-ticker.C:
			regions = sc.step()
		}
		if err := e.DrawAll(regions...); err != nil {
			return err
		}
		if err := e.Refresh(); err != nil {
			return err
		}
	}
}
