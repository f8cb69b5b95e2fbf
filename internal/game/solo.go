package game

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/termracer/internal/game/view"
	"github.com/dshills/termracer/internal/renderer"
	"github.com/dshills/termracer/internal/renderer/backend"
	"github.com/dshills/termracer/internal/renderer/core"
)

// Logger is the logging surface the race loop writes to.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}

// Options configures a solo race.
type Options struct {
	// Words is the text of the race, in order.
	Words []string

	// TickRate is the number of render ticks per second.
	TickRate int

	// StatsEvery is the number of ticks between stats and progress bar
	// redraws.
	StatsEvery int

	// LineFill is the fraction of the terminal width each line uses.
	LineFill float64

	// Theme is the initial color theme.
	Theme view.Theme

	// Themes delivers replacement themes while the race runs.
	// Nil disables live theme changes.
	Themes <-chan view.Theme

	// ReloadErrors delivers failed config reloads. They are logged and
	// the current theme is kept. Nil disables it.
	ReloadErrors <-chan error

	// Logger receives race events. Nil discards them.
	Logger Logger

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns the default race settings.
func DefaultOptions() Options {
	return Options{
		TickRate:   30,
		StatsEvery: 20,
		LineFill:   0.6,
		Theme:      view.DefaultTheme(),
	}
}

func (o *Options) normalize() {
	if o.TickRate < 1 {
		o.TickRate = 30
	}
	if o.StatsEvery < 1 {
		o.StatsEvery = 1
	}
	if o.LineFill <= 0 || o.LineFill > 1 {
		o.LineFill = 0.6
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Solo is one single-player race: a window carved into the line block,
// the stats line and the progress bar, and the state driving them.
type Solo struct {
	opts      Options
	window    *renderer.Window
	block     *view.LineBlock
	stats     *view.StatsLine
	bar       *view.ProgressBar
	throttler *Throttler
	tick      time.Duration
}

// NewSolo lays out a race for a terminal of the given size.
func NewSolo(width, height int, opts Options) *Solo {
	opts.normalize()

	window := renderer.New(width, height)
	blockRegion, bottom := window.HorizontalSplit(core.CellsInBottom(2), 0)
	statsRegion, barRegion := window.HorizontalSplit(core.CellsInBottom(1), bottom)

	lines := BuildLines(opts.Words, WordsPerLine(width, opts.LineFill))

	return &Solo{
		opts:      opts,
		window:    window,
		block:     view.NewLineBlock(lines, blockRegion, opts.Theme),
		stats:     view.NewStatsLine(statsRegion),
		bar:       view.NewProgressBar(barRegion, opts.Theme),
		throttler: NewThrottler(opts.StatsEvery),
		tick:      time.Second / time.Duration(opts.TickRate),
	}
}

// Window returns the race window.
func (s *Solo) Window() *renderer.Window {
	return s.window
}

// Block returns the typing lines.
func (s *Solo) Block() *view.LineBlock {
	return s.block
}

// Play acquires the terminal behind b, runs one race on it and releases
// the terminal on every exit path.
func Play(ctx context.Context, b backend.Backend, opts Options) (Result, error) {
	if err := b.Init(); err != nil {
		return Result{}, fmt.Errorf("init terminal: %w", err)
	}
	defer b.Shutdown()

	width, height := b.Size()
	return NewSolo(width, height, opts).Run(ctx, b)
}

// Run drives the race until the text is typed, Escape is pressed, or ctx
// is cancelled.
//
// Each iteration polls for input for one tick period. Input is applied at
// once; a poll that times out is a tick, which updates stats, redraws and
// flushes the window to b.
func (s *Solo) Run(ctx context.Context, b backend.Backend) (Result, error) {
	log := s.opts.Logger
	start := s.opts.Now()
	log.Info("race started: %d words, %d lines, tick %s", len(s.opts.Words), len(s.block.Lines()), s.tick)

	for {
		if err := ctx.Err(); err != nil {
			return s.result(Aborted, start), err
		}

		ev, ok := b.PollEvent(s.tick)
		if ok {
			if s.handleEvent(ev) {
				log.Info("race aborted")
				return s.result(Aborted, start), nil
			}
			continue
		}

		s.applyReloads()

		progress := s.block.Progress()
		if s.block.Done() {
			res := s.result(Completed, start)
			log.Info("race completed: %.1f wpm, %.0f%% accuracy in %s", res.WPM, res.Accuracy*100, res.Elapsed)
			return res, nil
		}
		s.stats.SetWPM(WPM(progress.Correct, s.opts.Now().Sub(start)))
		s.bar.SetProgress(progress)

		s.block.Draw(s.window)
		s.throttler.TryRun(func() {
			s.stats.Draw(s.window)
			s.bar.Draw(s.window)
		})
		s.block.ResetCursor(s.window)

		if err := s.window.Display(b); err != nil {
			return s.result(Aborted, start), fmt.Errorf("display: %w", err)
		}
		if err := b.Flush(); err != nil {
			return s.result(Aborted, start), fmt.Errorf("flush: %w", err)
		}
	}
}

// handleEvent applies one input event and reports whether the race
// should be abandoned.
func (s *Solo) handleEvent(ev backend.Event) bool {
	switch ev.Type {
	case backend.EventKey:
		switch ev.Key {
		case backend.KeyEscape, backend.KeyCtrlC:
			return true
		}
		s.block.HandleKey(ev)
	case backend.EventResize:
		s.opts.Logger.Debug("resize to %dx%d", ev.Width, ev.Height)
		s.window.Resize(ev.Width, ev.Height)
		s.window.Clear()
		s.throttler.Prime()
	}
	return false
}

// applyReloads takes at most one pending theme and one pending reload
// error without blocking. A nil channel is never ready.
func (s *Solo) applyReloads() {
	select {
	case err, ok := <-s.opts.ReloadErrors:
		if !ok {
			s.opts.ReloadErrors = nil
			break
		}
		s.opts.Logger.Warn("config reload failed, keeping current theme: %v", err)
	default:
	}

	select {
	case theme, ok := <-s.opts.Themes:
		if !ok {
			s.opts.Themes = nil
			return
		}
		s.opts.Logger.Debug("theme changed")
		s.block.SetTheme(theme)
		s.bar.SetTheme(theme)
		s.throttler.Prime()
	default:
	}
}

func (s *Solo) result(outcome Outcome, start time.Time) Result {
	progress := s.block.Progress()
	elapsed := s.opts.Now().Sub(start)
	return Result{
		Outcome:  outcome,
		WPM:      WPM(progress.Correct, elapsed),
		Accuracy: progress.Accuracy(),
		Elapsed:  elapsed,
		Words:    len(s.opts.Words),
		Progress: progress,
	}
}
