// Package app provides the termracer command shell. It reads commands,
// runs races on the terminal and prints their results.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"
	"golang.org/x/term"

	"github.com/dshills/termracer/internal/config"
	"github.com/dshills/termracer/internal/game"
	"github.com/dshills/termracer/internal/game/words"
	"github.com/dshills/termracer/internal/renderer/backend"
)

// Prompt is printed before each command.
const Prompt = "> "

// Options configures the application.
type Options struct {
	// Config holds the loaded settings. Nil uses the defaults.
	Config *config.Config

	// Logger receives application logs. Nil discards them.
	Logger *Logger

	// In and Out are the command stream. They default to stdin and stdout.
	In  io.Reader
	Out io.Writer

	// NewBackend opens the terminal a race runs on.
	NewBackend func() (backend.Backend, error)

	// IsTerminal reports whether races can run. Defaults to checking
	// that stdin is a terminal.
	IsTerminal func() bool

	// WordList replaces the configured word list.
	WordList []string

	// Rand drives word selection. Nil seeds randomly.
	Rand *rand.Rand

	// NewSessionID names each race in logs and results.
	NewSessionID func() string
}

// Application is the command shell.
type Application struct {
	cfg        *config.Config
	log        *Logger
	in         *bufio.Scanner
	out        io.Writer
	newBackend func() (backend.Backend, error)
	isTerminal func() bool
	words      *words.Generator
	newID      func() string
}

// New creates an Application and loads its word list.
func New(opts Options) (*Application, error) {
	app := &Application{
		cfg:        opts.Config,
		log:        opts.Logger,
		out:        opts.Out,
		newBackend: opts.NewBackend,
		isTerminal: opts.IsTerminal,
		newID:      opts.NewSessionID,
	}

	if app.cfg == nil {
		app.cfg = config.New()
	}
	if app.log == nil {
		app.log = NullLogger
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	app.in = bufio.NewScanner(opts.In)
	if app.out == nil {
		app.out = os.Stdout
	}
	if app.newBackend == nil {
		app.newBackend = func() (backend.Backend, error) {
			return backend.NewTerminal()
		}
	}
	if app.isTerminal == nil {
		app.isTerminal = func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		}
	}
	if app.newID == nil {
		app.newID = uuid.NewString
	}

	list := opts.WordList
	if list == nil {
		var err error
		list, err = loadWords(app.cfg.Words)
		if err != nil {
			return nil, err
		}
	}
	app.words = words.NewGenerator(list, opts.Rand)
	app.log.WithComponent("words").Debug("%d words available", app.words.Size())

	return app, nil
}

func loadWords(cfg config.WordsConfig) ([]string, error) {
	if cfg.File == "" {
		return words.Default(), nil
	}

	path, err := filepath.Abs(cfg.File)
	if err != nil {
		return nil, NewOperationError("load words", cfg.File, err)
	}
	list, err := words.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path), cfg.JSONPath)
	if err != nil {
		return nil, NewOperationError("load words", cfg.File, err)
	}
	return list, nil
}

// Run reads and executes commands until quit, end of input, or ctx is
// cancelled. The quit command returns ErrQuit; end of input returns nil.
func (app *Application) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(app.out, Prompt)
		if !app.in.Scan() {
			fmt.Fprintln(app.out)
			return app.in.Err()
		}

		line := app.in.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		err := app.Execute(ctx, line)
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			return err
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case errors.Is(err, ErrUnknownCommand):
			fmt.Fprintln(app.out, "No such command.")
			fmt.Fprintln(app.out, `Use "help" to see a list of commands.`)
		case errors.Is(err, ErrInvalidWordCount):
			fmt.Fprintln(app.out, "The word count must be a positive number.")
			fmt.Fprintln(app.out, `Use "help" to see a list of commands.`)
		case errors.Is(err, ErrNotATerminal):
			fmt.Fprintln(app.out, "Races need an interactive terminal.")
		default:
			app.log.Error("command %q: %v", line, err)
			fmt.Fprintf(app.out, "Error: %v\n", err)
		}
	}
}

// Execute runs one command line.
func (app *Application) Execute(ctx context.Context, line string) error {
	cmd, err := Parse(line)
	if err != nil {
		return err
	}

	switch cmd.Kind {
	case CommandHelp:
		fmt.Fprintln(app.out, HelpText())
		return nil
	case CommandQuit:
		return ErrQuit
	default:
		_, err := app.Race(ctx, cmd.Words)
		return err
	}
}

// RaceOnce runs a single race and returns ErrAborted if the player
// abandoned it.
func (app *Application) RaceOnce(ctx context.Context, n int) error {
	res, err := app.Race(ctx, n)
	if err != nil {
		return err
	}
	if res.Outcome == game.Aborted {
		return ErrAborted
	}
	return nil
}

// Race runs one race of n words, or the configured count when n is 0,
// and prints its result. The terminal is released before printing.
func (app *Application) Race(ctx context.Context, n int) (res game.Result, err error) {
	if n <= 0 {
		n = app.cfg.Game.Words
	}
	if !app.isTerminal() {
		return game.Result{}, ErrNotATerminal
	}

	id := app.newID()
	log := app.log.WithField("session", id)

	opts, err := app.raceOptions(n, log)
	if err != nil {
		return game.Result{}, err
	}

	if app.cfg.Path() != "" {
		w, werr := app.cfg.Watch()
		if werr != nil {
			log.Warn("live reload disabled: %v", werr)
		} else {
			defer w.Close()
			opts.Themes = w.Themes()
			opts.ReloadErrors = w.Errors()
		}
	}

	b, err := app.newBackend()
	if err != nil {
		return game.Result{}, NewOperationError("open terminal", "", err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			log.Error("%v", err)
		}
	}()

	res, err = game.Play(ctx, b, opts)
	if err != nil {
		return res, NewOperationError("race", id, err)
	}

	if err := app.printResult(res, id); err != nil {
		return res, err
	}
	return res, nil
}

func (app *Application) raceOptions(n int, log *Logger) (game.Options, error) {
	theme, err := app.cfg.ViewTheme()
	if err != nil {
		return game.Options{}, err
	}

	opts := game.DefaultOptions()
	opts.Words = app.words.Generate(n)
	opts.TickRate = app.cfg.Game.TickRate
	opts.StatsEvery = app.cfg.Game.StatsEvery
	opts.LineFill = app.cfg.Game.LineFill
	opts.Theme = theme
	opts.Logger = log.WithComponent("race")
	return opts, nil
}

func (app *Application) printResult(res game.Result, id string) error {
	if app.cfg.Output.Format != config.FormatJSON {
		_, err := fmt.Fprintln(app.out, res.String())
		return err
	}

	js, err := ResultJSON(res, id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(app.out, js)
	return err
}

// ResultJSON renders a race result as a JSON object.
func ResultJSON(res game.Result, session string) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"session", session},
		{"outcome", res.Outcome.String()},
		{"wpm", int(res.WPM)},
		{"accuracy", float64(int(res.Accuracy*1000+0.5)) / 1000},
		{"elapsedMs", res.Elapsed.Milliseconds()},
		{"words", res.Words},
		{"progress.correct", res.Progress.Correct},
		{"progress.incorrect", res.Progress.Incorrect},
		{"progress.total", res.Progress.Total},
	}

	js := "{}"
	for _, f := range fields {
		var err error
		js, err = sjson.Set(js, f.path, f.value)
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", f.path, err)
		}
	}
	return js, nil
}
