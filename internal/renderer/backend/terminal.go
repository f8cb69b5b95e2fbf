package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/termracer/internal/renderer/core"
)

// Terminal implements Backend using tcell.
// tcell takes care of raw mode, the alternate screen, and its own final
// screen diff; Terminal feeds it the cells a window flush emits.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	events chan tcell.Event
	quit   chan struct{}
	done   chan struct{}
	active bool

	row, col int
	style    tcell.Style
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen), nil
}

// NewSimulationTerminal creates a terminal backend over tcell's simulation
// screen, for tests.
func NewSimulationTerminal() (*Terminal, tcell.SimulationScreen) {
	screen := tcell.NewSimulationScreen("UTF-8")
	return newTerminal(screen), screen
}

func newTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.Clear()

	t.events = make(chan tcell.Event, 64)
	t.quit = make(chan struct{})
	t.done = make(chan struct{})
	go func(events chan tcell.Event, quit, done chan struct{}) {
		defer close(done)
		t.screen.ChannelEvents(events, quit)
	}(t.events, t.quit, t.done)

	t.active = true
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return
	}
	t.active = false
	close(t.quit)
	t.screen.Fini()
	<-t.done
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) MoveTo(row, col int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return ErrNotInitialized
	}
	t.row, t.col = row, col
	return nil
}

func (t *Terminal) SetForeground(c core.Color) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return ErrNotInitialized
	}
	t.style = t.style.Foreground(convertColor(c))
	return nil
}

func (t *Terminal) SetBackground(c core.Color) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return ErrNotInitialized
	}
	t.style = t.style.Background(convertColor(c))
	return nil
}

func (t *Terminal) Print(s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return ErrNotInitialized
	}
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		runes := []rune(cluster)
		t.screen.SetContent(t.col, t.row, runes[0], runes[1:], t.style)
		t.col++
	}
	return nil
}

func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return ErrNotInitialized
	}
	t.screen.ShowCursor(t.col, t.row)
	t.screen.Show()
	return nil
}

func (t *Terminal) PollEvent(timeout time.Duration) (Event, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return Event{}, false
			}
			converted := convertEvent(ev)
			if converted.Type == EventNone {
				continue
			}
			if converted.Type == EventResize {
				t.mu.Lock()
				t.screen.Sync()
				t.mu.Unlock()
			}
			return converted, true
		case <-timer.C:
			return Event{}, false
		}
	}
}

func (t *Terminal) PostEvent(event Event) {
	switch event.Type {
	case EventKey:
		tcellEv := tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
		_ = t.screen.PostEvent(tcellEv) // best-effort; event queue may be full
	case EventResize:
		_ = t.screen.PostEvent(tcell.NewEventResize(event.Width, event.Height))
	}
}

// convertColor converts our Color to tcell.Color.
func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyCtrlD:
		return KeyCtrlD
	default:
		return KeyNone
	}
}

// convertToTcellKey converts our Key to tcell.Key.
func convertToTcellKey(k Key) tcell.Key {
	switch k {
	case KeyEscape:
		return tcell.KeyEscape
	case KeyEnter:
		return tcell.KeyEnter
	case KeyTab:
		return tcell.KeyTab
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyDelete:
		return tcell.KeyDelete
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	case KeyCtrlC:
		return tcell.KeyCtrlC
	case KeyCtrlD:
		return tcell.KeyCtrlD
	default:
		return tcell.KeyRune
	}
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

// convertToTcellMod converts our ModMask to tcell.ModMask.
func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	if m&ModShift != 0 {
		result |= tcell.ModShift
	}
	if m&ModCtrl != 0 {
		result |= tcell.ModCtrl
	}
	if m&ModAlt != 0 {
		result |= tcell.ModAlt
	}
	if m&ModMeta != 0 {
		result |= tcell.ModMeta
	}
	return result
}
