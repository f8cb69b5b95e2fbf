package loader

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultEnvPrefix is the prefix of termracer environment variables.
const DefaultEnvPrefix = "TERMRACER_"

// EnvLoader loads configuration from environment variables.
//
// Mapped variables go to their configured path. Other prefixed variables
// are converted by name: TERMRACER_GAME_TICK_RATE sets game.tickRate.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "TERMRACER_")
	mapping map[string]string // Env var -> config path
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "TERMRACER_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		environ: os.Environ,
	}
}

// WithEnviron replaces the environment source, in os.Environ form.
func (l *EnvLoader) WithEnviron(environ func() []string) *EnvLoader {
	l.environ = environ
	return l
}

// Shorthands that don't follow the SECTION_SETTING naming.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":  "logging.level",
		prefix + "LOG_FILE":   "logging.file",
		prefix + "WORD_COUNT": "game.words",
		prefix + "WORD_LIST":  "words.file",
		prefix + "FORMAT":     "output.format",
	}
}

// Load reads environment variables and returns a configuration map.
// Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if path, mapped := l.mapping[name]; mapped {
			SetByPath(config, path, ParseValue(value))
			continue
		}
		if !strings.HasPrefix(name, l.prefix) || name == l.prefix {
			continue
		}

		SetByPath(config, l.envToPath(name), ParseValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// RemoveMapping removes an environment variable mapping.
func (l *EnvLoader) RemoveMapping(envVar string) {
	delete(l.mapping, envVar)
}

// envToPath converts TERMRACER_GAME_TICK_RATE to game.tickRate.
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	// Remaining parts form the setting name in camelCase.
	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}

	return section + "." + setting
}

// ParseValue converts an environment string into the closest typed value.
// Numbers stay numbers: "1" is an int, not a boolean.
func ParseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only with a decimal point, so "1e3"-style words stay strings.
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return s
}
