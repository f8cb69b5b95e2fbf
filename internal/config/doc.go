// Package config provides the configuration system for termracer.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← TERMRACER_GAME_WORDS=50
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/termracer/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file may be TOML (.toml) or YAML (.yaml, .yml). Keys use
// camelCase inside sections:
//
//	[game]
//	words = 40
//	tickRate = 30
//	statsEvery = 20
//	lineFill = 0.6
//
//	[words]
//	file = "/usr/share/dict/words"
//
//	[theme]
//	correct = "#00ff00"
//	barFill = "#3366ff"
//
// # Basic Usage
//
//	cfg, err := config.Load(config.WithDefaultPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	theme, _ := cfg.ViewTheme()
//
// # Live Reload
//
// Watch follows the config file with fsnotify and publishes the theme
// after every successful reload:
//
//	w, err := cfg.Watch()
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	opts.Themes = w.Themes()
package config
