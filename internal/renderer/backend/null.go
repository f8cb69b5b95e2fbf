package backend

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"

	"github.com/dshills/termracer/internal/renderer/core"
)

// NullBackend is an in-memory backend for testing.
// It keeps a screen grid and counts the operations it receives.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	row, col      int
	fg, bg        core.Color
	events        chan Event
	initialized   bool
	shutdown      bool

	// Operation counters.
	Moves    int
	FgSets   int
	BgSets   int
	Prints   int
	Flushes  int
	Failures int

	// FailAfter makes every call after that many successful Print calls
	// return ErrInjected. Zero disables failure injection.
	FailAfter int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		fg:     core.ColorDefault,
		bg:     core.ColorDefault,
		events: make(chan Event, 100),
	}
	b.resize(width, height)
	return b
}

func (b *NullBackend) resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = make([][]core.Cell, height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error {
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.shutdown = true
}

// Active reports whether Init was called and Shutdown was not.
func (b *NullBackend) Active() bool {
	return b.initialized && !b.shutdown
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) MoveTo(row, col int) error {
	if err := b.fail(); err != nil {
		return err
	}
	b.Moves++
	b.row, b.col = row, col
	return nil
}

func (b *NullBackend) SetForeground(c core.Color) error {
	if err := b.fail(); err != nil {
		return err
	}
	b.FgSets++
	b.fg = c
	return nil
}

func (b *NullBackend) SetBackground(c core.Color) error {
	if err := b.fail(); err != nil {
		return err
	}
	b.BgSets++
	b.bg = c
	return nil
}

func (b *NullBackend) Print(s string) error {
	if err := b.fail(); err != nil {
		return err
	}
	b.Prints++
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if b.row >= 0 && b.row < b.height && b.col >= 0 && b.col < b.width {
			b.cells[b.row][b.col] = core.NewCell(cluster, b.fg, b.bg)
		}
		b.col++
	}
	return nil
}

func (b *NullBackend) fail() error {
	if b.FailAfter > 0 && b.Prints >= b.FailAfter {
		b.Failures++
		return ErrInjected
	}
	return nil
}

func (b *NullBackend) PollEvent(timeout time.Duration) (Event, bool) {
	select {
	case ev := <-b.events:
		if ev.Type == EventResize {
			b.resize(ev.Width, ev.Height)
		}
		return ev, true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-b.events:
		if ev.Type == EventResize {
			b.resize(ev.Width, ev.Height)
		}
		return ev, true
	case <-timer.C:
		return Event{}, false
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) Flush() error {
	b.Flushes++
	return nil
}

// CellAt returns the screen cell at (row, col).
func (b *NullBackend) CellAt(row, col int) core.Cell {
	if row >= 0 && row < b.height && col >= 0 && col < b.width {
		return b.cells[row][col]
	}
	return core.EmptyCell()
}

// Row returns the text of one screen row.
func (b *NullBackend) Row(row int) string {
	if row < 0 || row >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[row] {
		sb.WriteString(c.Content)
	}
	return sb.String()
}

// CursorPosition returns where the last MoveTo left the cursor, advanced
// by any text printed since.
func (b *NullBackend) CursorPosition() (row, col int) {
	return b.row, b.col
}

// ResetCounters zeroes the operation counters.
func (b *NullBackend) ResetCounters() {
	b.Moves, b.FgSets, b.BgSets, b.Prints, b.Flushes, b.Failures = 0, 0, 0, 0, 0, 0
}
