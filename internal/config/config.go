package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/termracer/internal/config/loader"
	"github.com/dshills/termracer/internal/game/view"
	"github.com/dshills/termracer/internal/renderer/core"
)

// Source identifies the layer a setting came from.
type Source uint8

const (
	// SourceDefault is a built-in default.
	SourceDefault Source = iota
	// SourceFile is the TOML or YAML config file.
	SourceFile
	// SourceEnv is a TERMRACER_ environment variable.
	SourceEnv
	// SourceFlag is a command line flag.
	SourceFlag
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	case SourceFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Output formats for the race summary.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// GameConfig holds race settings.
type GameConfig struct {
	Words      int
	TickRate   int
	StatsEvery int
	LineFill   float64
}

// WordsConfig selects the word list.
type WordsConfig struct {
	// File is a plain text or JSON word list. Empty uses the built-in list.
	File     string
	JSONPath string
}

// ThemeConfig holds colours as hex strings, or "default".
type ThemeConfig struct {
	Correct   string
	Incorrect string
	Pending   string
	Bar       string
	BarFill   string
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string
	File  string
}

// OutputConfig controls how race results are printed.
type OutputConfig struct {
	Format string
}

// Config is the resolved termracer configuration.
//
// Settings are layered: defaults < config file < environment < flags.
type Config struct {
	Game    GameConfig
	Words   WordsConfig
	Theme   ThemeConfig
	Logging LoggingConfig
	Output  OutputConfig

	fs        loader.FileSystem
	path      string
	required  bool
	envPrefix string
	environ   func() []string
	overrides map[string]any

	layers [4]map[string]any
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the config file. A missing file is an error.
func WithPath(path string) Option {
	return func(c *Config) {
		c.path = path
		c.required = true
	}
}

// WithDefaultPath uses the per-user config file if it exists.
func WithDefaultPath() Option {
	return func(c *Config) {
		if p, err := DefaultPath(); err == nil {
			c.path = p
			c.required = false
		}
	}
}

// WithFS sets the file system the config file is read from.
func WithFS(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnvPrefix sets the environment variable prefix. Empty disables the
// environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithEnviron replaces os.Environ as the environment source.
func WithEnviron(environ func() []string) Option {
	return func(c *Config) {
		c.environ = environ
	}
}

// WithOverride sets a value in the flag layer.
func WithOverride(path string, value any) Option {
	return func(c *Config) {
		loader.SetByPath(c.overrides, path, value)
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "termracer", "config.toml"), nil
}

// New creates a Config holding the built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		environ:   os.Environ,
		overrides: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.layers[SourceDefault] = defaults()
	if err := c.decode(c.layers[SourceDefault]); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return c
}

// Load creates a Config and loads every layer.
func Load(opts ...Option) (*Config, error) {
	c := New(opts...)
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns the config file path, or "" when none is used.
func (c *Config) Path() string {
	return c.path
}

// Reload re-reads the file and environment layers and re-applies the
// flag layer. On error the previous settings are kept.
func (c *Config) Reload() error {
	file, err := c.loadFile()
	if err != nil {
		return err
	}

	var env map[string]any
	if c.envPrefix != "" {
		env, err = loader.NewEnvLoader(c.envPrefix).WithEnviron(c.environ).Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
	}

	merged := loader.Clone(c.layers[SourceDefault])
	merged = loader.DeepMerge(merged, loader.Clone(file))
	merged = loader.DeepMerge(merged, loader.Clone(env))
	merged = loader.DeepMerge(merged, loader.Clone(c.overrides))

	next := *c
	if err := next.decode(merged); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	c.Game, c.Words, c.Theme, c.Logging, c.Output = next.Game, next.Words, next.Theme, next.Logging, next.Output
	c.layers[SourceFile] = file
	c.layers[SourceEnv] = env
	c.layers[SourceFlag] = c.overrides
	return nil
}

func (c *Config) loadFile() (map[string]any, error) {
	if c.path == "" {
		return nil, nil
	}

	if c.required {
		if _, err := c.fs.Stat(c.path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, c.path)
			}
			return nil, err
		}
	}

	l, err := loader.ForPath(c.fs, c.path)
	if err != nil {
		return nil, err
	}
	return l.Load()
}

// WhichSource returns the highest layer that sets path.
func (c *Config) WhichSource(path string) Source {
	for s := SourceFlag; s > SourceDefault; s-- {
		if _, ok := loader.GetByPath(c.layers[s], path); ok {
			return s
		}
	}
	return SourceDefault
}

// Validate checks every setting's range.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, path string, format string, args ...any) {
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
		}
	}

	check(c.Game.Words >= 1, "game.words", "must be at least 1, got %d", c.Game.Words)
	check(c.Game.TickRate >= 1 && c.Game.TickRate <= 1000, "game.tickRate", "must be between 1 and 1000, got %d", c.Game.TickRate)
	check(c.Game.StatsEvery >= 1, "game.statsEvery", "must be at least 1, got %d", c.Game.StatsEvery)
	check(c.Game.LineFill > 0 && c.Game.LineFill <= 1, "game.lineFill", "must be in (0, 1], got %g", c.Game.LineFill)
	check(c.Words.JSONPath != "", "words.jsonPath", "must not be empty")
	check(c.Output.Format == FormatText || c.Output.Format == FormatJSON, "output.format", "must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		check(false, "logging.level", "unknown level %q", c.Logging.Level)
	}

	if _, err := c.ViewTheme(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ViewTheme converts the configured colours.
func (c *Config) ViewTheme() (view.Theme, error) {
	var t view.Theme
	fields := []struct {
		path string
		hex  string
		dst  *core.Color
	}{
		{"theme.correct", c.Theme.Correct, &t.Correct},
		{"theme.incorrect", c.Theme.Incorrect, &t.Incorrect},
		{"theme.pending", c.Theme.Pending, &t.Pending},
		{"theme.bar", c.Theme.Bar, &t.Bar},
		{"theme.barFill", c.Theme.BarFill, &t.BarFill},
	}

	for _, f := range fields {
		col, err := parseColor(f.hex)
		if err != nil {
			return view.Theme{}, &ValidationError{Path: f.path, Message: err.Error()}
		}
		*f.dst = col
	}
	return t, nil
}

func parseColor(s string) (core.Color, error) {
	if s == "" || strings.EqualFold(s, "default") {
		return core.ColorDefault, nil
	}
	return core.ColorFromHex(s)
}

func defaults() map[string]any {
	return map[string]any{
		"game": map[string]any{
			"words":      30,
			"tickRate":   30,
			"statsEvery": 20,
			"lineFill":   0.6,
		},
		"words": map[string]any{
			"file":     "",
			"jsonPath": "words",
		},
		"theme": map[string]any{
			"correct":   "#00ff00",
			"incorrect": "#ff0000",
			"pending":   "#ffffff",
			"bar":       "#ffffff",
			"barFill":   "#00ff00",
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"output": map[string]any{
			"format": FormatText,
		},
	}
}

// decode copies the merged map into the typed sections.
func (c *Config) decode(m map[string]any) error {
	d := decoder{data: m}

	c.Game.Words = d.getInt("game.words")
	c.Game.TickRate = d.getInt("game.tickRate")
	c.Game.StatsEvery = d.getInt("game.statsEvery")
	c.Game.LineFill = d.getFloat("game.lineFill")

	c.Words.File = d.getString("words.file")
	c.Words.JSONPath = d.getString("words.jsonPath")

	c.Theme.Correct = d.getString("theme.correct")
	c.Theme.Incorrect = d.getString("theme.incorrect")
	c.Theme.Pending = d.getString("theme.pending")
	c.Theme.Bar = d.getString("theme.bar")
	c.Theme.BarFill = d.getString("theme.barFill")

	c.Logging.Level = d.getString("logging.level")
	c.Logging.File = d.getString("logging.file")

	c.Output.Format = strings.ToLower(d.getString("output.format"))

	return errors.Join(d.errs...)
}

type decoder struct {
	data map[string]any
	errs []error
}

func (d *decoder) mismatch(path, expected string, val any) {
	d.errs = append(d.errs, &TypeError{
		Path:     path,
		Expected: expected,
		Actual:   fmt.Sprintf("%T", val),
	})
}

func (d *decoder) getInt(path string) int {
	val, _ := loader.GetByPath(d.data, path)
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	case nil:
		return 0
	}
	d.mismatch(path, "integer", val)
	return 0
}

func (d *decoder) getFloat(path string) float64 {
	val, _ := loader.GetByPath(d.data, path)
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case nil:
		return 0
	}
	d.mismatch(path, "number", val)
	return 0
}

func (d *decoder) getString(path string) string {
	val, _ := loader.GetByPath(d.data, path)
	switch v := val.(type) {
	case string:
		return v
	case nil:
		return ""
	}
	d.mismatch(path, "string", val)
	return ""
}
