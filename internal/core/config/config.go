// Package config handles configuration loading and validation for swipelist.
package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/swipelist/internal/core/styles"
)

// Key map actions that can be rebound in the keys section.
const (
	ActionUp        = "up"
	ActionDown      = "down"
	ActionOpenLeft  = "open_left"
	ActionOpenRight = "open_right"
	ActionActivate  = "activate"
	ActionDrag      = "drag"
	ActionCancel    = "cancel"
	ActionHelp      = "help"
	ActionQuit      = "quit"
)

// defaultKeys provides built-in key bindings that users can override per action.
var defaultKeys = map[string][]string{
	ActionUp:        {"up", "k"},
	ActionDown:      {"down", "j"},
	ActionOpenLeft:  {"right", "l"},
	ActionOpenRight: {"left", "h"},
	ActionActivate:  {"enter", "x"},
	ActionDrag:      {"space"},
	ActionCancel:    {"esc"},
	ActionHelp:      {"?"},
	ActionQuit:      {"q", "ctrl+c"},
}

// Actions returns the sorted names of all bindable actions.
func Actions() []string {
	return slices.Sorted(maps.Keys(defaultKeys))
}

// Label widths the snap points must leave room for.
const (
	deleteLabel = "[x]"
	closeLabel  = "CLOSE"
)

// Config holds the application configuration.
type Config struct {
	Rows  int                 `yaml:"rows"`
	Theme string              `yaml:"theme"`
	TUI   TUIConfig           `yaml:"tui"`
	Keys  map[string][]string `yaml:"keys"`
}

// TUIConfig tunes rendering and gesture animation.
type TUIConfig struct {
	RowHeight     int           `yaml:"row_height"`     // lines per row
	FrameInterval time.Duration `yaml:"frame_interval"` // animation frame length
	SwipeSpeed    int           `yaml:"swipe_speed"`    // cells per frame, 0 = instant
	LeftSnap      int           `yaml:"left_snap"`      // width of the delete underlay
	RightSnap     int           `yaml:"right_snap"`     // first snap of the close underlay
	ShiftTicks    int           `yaml:"shift_ticks"`    // frames a shifted row stays highlighted
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Rows:  3,
		Theme: styles.DefaultTheme,
		TUI: TUIConfig{
			RowHeight:     3,
			FrameInterval: 16 * time.Millisecond,
			SwipeSpeed:    3,
			LeftSnap:      10,
			RightSnap:     10,
			ShiftTicks:    12,
		},
		Keys: map[string][]string{},
	}
}

// Load reads configuration from the given path. A missing file yields the
// defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user keys into defaults (user config overrides defaults)
	cfg.Keys = mergeKeys(defaultKeys, cfg.Keys)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.TUI.RowHeight == 0 {
		c.TUI.RowHeight = defaults.TUI.RowHeight
	}
	if c.TUI.FrameInterval == 0 {
		c.TUI.FrameInterval = defaults.TUI.FrameInterval
	}
	if c.TUI.LeftSnap == 0 {
		c.TUI.LeftSnap = defaults.TUI.LeftSnap
	}
	if c.TUI.RightSnap == 0 {
		c.TUI.RightSnap = defaults.TUI.RightSnap
	}
}

// mergeKeys merges user bindings into defaults per action.
func mergeKeys(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))
	for action, keys := range defaults {
		result[action] = slices.Clone(keys)
	}
	for action, keys := range user {
		result[action] = slices.Clone(keys)
	}
	return result
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("rows must be at least 1")
	}

	if c.TUI.RowHeight < 1 {
		return fmt.Errorf("tui.row_height must be at least 1")
	}

	if c.TUI.FrameInterval < time.Millisecond {
		return fmt.Errorf("tui.frame_interval must be at least 1ms")
	}

	if c.TUI.LeftSnap < 0 {
		return fmt.Errorf("tui.left_snap cannot be negative")
	}

	if c.TUI.RightSnap < 0 {
		return fmt.Errorf("tui.right_snap cannot be negative")
	}

	if c.TUI.SwipeSpeed < 0 {
		return fmt.Errorf("tui.swipe_speed cannot be negative")
	}

	if c.TUI.ShiftTicks < 0 {
		return fmt.Errorf("tui.shift_ticks cannot be negative")
	}

	for action, keys := range c.Keys {
		if !isValidAction(action) {
			return fmt.Errorf("keys: unknown action %q", action)
		}
		if len(keys) == 0 {
			return fmt.Errorf("keys: action %q has no keys", action)
		}
	}

	return nil
}

func isValidAction(action string) bool {
	_, ok := defaultKeys[action]
	return ok
}
