// Package backend connects the renderer to a terminal.
//
// A Sink receives the cursor moves, color changes and text produced by a
// window flush. A Backend is a Sink that also owns the terminal session:
// raw mode, the alternate screen, and the input and resize event source.
package backend

import (
	"time"

	"github.com/dshills/termracer/internal/renderer/core"
)

// Sink is the output side of a terminal.
// Rows and columns are zero-based absolute screen positions.
type Sink interface {
	// MoveTo places the output cursor at (row, col).
	MoveTo(row, col int) error

	// SetForeground sets the color used by subsequent Print calls.
	SetForeground(c core.Color) error

	// SetBackground sets the background used by subsequent Print calls.
	SetBackground(c core.Color) error

	// Print writes text at the cursor and advances it one column per grapheme.
	Print(s string) error
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlD
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// KeyEvent builds a key event for a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a key event for a typed character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// ResizeEvent builds a terminal resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Backend is a terminal session.
type Backend interface {
	Sink

	// Init acquires the terminal: raw mode, alternate screen, event source.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal state acquired by Init.
	// It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// PollEvent waits up to timeout for the next event.
	// The second result is false if the timeout elapsed first.
	PollEvent(timeout time.Duration) (Event, bool)

	// PostEvent queues a synthetic event.
	PostEvent(event Event)

	// Flush makes everything written since the last Flush visible and
	// shows the cursor where the last MoveTo left it.
	Flush() error
}
