// Package main is the entry point for TermRacer, a terminal typing race.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/termracer/internal/app"
	"github.com/dshills/termracer/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath  string
	words       int
	logFile     string
	logLevel    string
	format      string
	showVersion bool
	set         map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if f.showVersion {
		fmt.Fprintf(stdout, "TermRacer %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(configOptions(f)...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	application, err := app.New(app.Options{
		Config: cfg,
		Logger: logger,
		In:     stdin,
		Out:    stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("termracer %s starting", version)

	if f.words > 0 {
		err = application.RaceOnce(ctx, f.words)
	} else {
		err = application.Run(ctx)
	}

	switch {
	case err == nil, errors.Is(err, app.ErrQuit):
		return 0
	case errors.Is(err, app.ErrAborted):
		return 1
	case errors.Is(err, context.Canceled):
		return 130
	default:
		logger.Error("exit: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("termracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.IntVar(&f.words, "words", 0, "Run one race with this many words and exit")
	fs.IntVar(&f.words, "w", 0, "Run one race with this many words and exit (shorthand)")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.format, "format", "text", "Result format (text, json)")
	fs.BoolVar(&f.showVersion, "version", false, "Show version information")
	fs.BoolVar(&f.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "TermRacer - typing races in the terminal\n\n")
		fmt.Fprintf(stderr, "Usage: termracer [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  termracer                   Start the command prompt\n")
		fmt.Fprintf(stderr, "  termracer -words 25         Race 25 words and exit\n")
		fmt.Fprintf(stderr, "  termracer -format json -w 5 Print the result as JSON\n")
	}

	if err := fs.Parse(args); err != nil {
		return f, err
	}

	// Only flags given explicitly override the config file.
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})

	if f.words < 0 {
		fmt.Fprintf(stderr, "Error: invalid word count %d\n", f.words)
		return f, app.ErrInvalidWordCount
	}

	return f, nil
}

func configOptions(f flags) []config.Option {
	var opts []config.Option

	if f.configPath != "" {
		opts = append(opts, config.WithPath(f.configPath))
	} else {
		opts = append(opts, config.WithDefaultPath())
	}

	if f.set["log-file"] {
		opts = append(opts, config.WithOverride("logging.file", f.logFile))
	}
	if f.set["log-level"] {
		opts = append(opts, config.WithOverride("logging.level", f.logLevel))
	}
	if f.set["format"] {
		opts = append(opts, config.WithOverride("output.format", f.format))
	}
	if f.words > 0 {
		opts = append(opts, config.WithOverride("game.words", f.words))
	}

	return opts
}

// openLogger logs to the configured file. Without one, logging is off:
// the race owns the terminal.
func openLogger(cfg config.LoggingConfig) (*app.Logger, func(), error) {
	if cfg.File == "" {
		return app.NullLogger, func() {}, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Level),
		Output: file,
		Prefix: "termracer",
	})
	return logger, func() { _ = file.Close() }, nil
}
