package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/termracer/internal/game/view"
)

// Watcher reloads the config file when it changes and publishes the
// resulting theme.
type Watcher struct {
	cfg  *Config
	path string
	fsw  *fsnotify.Watcher

	themes chan view.Theme
	errors chan error

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// Watch starts watching the config file. The watcher reloads a private
// copy of c; c itself is never modified.
func (c *Config) Watch() (*Watcher, error) {
	if c.path == "" {
		return nil, ErrNoConfigFile
	}

	path, err := filepath.Abs(c.path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors often replace the file, so watch the directory.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	cp := *c
	cp.path = path
	w := &Watcher{
		cfg:     &cp,
		path:    path,
		fsw:     fsw,
		themes:  make(chan view.Theme, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Themes delivers the theme after each successful reload. Only the most
// recent theme is kept when the reader falls behind.
func (w *Watcher) Themes() <-chan view.Theme {
	return w.themes
}

// Errors delivers reload failures. Only the most recent is kept.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			publish(w.errors, err)
		}
	}
}

func (w *Watcher) reload() {
	if err := w.cfg.Reload(); err != nil {
		publish(w.errors, err)
		return
	}

	theme, err := w.cfg.ViewTheme()
	if err != nil {
		publish(w.errors, err)
		return
	}
	publish(w.themes, theme)
}

// publish replaces any unread value in a one-slot channel.
func publish[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
