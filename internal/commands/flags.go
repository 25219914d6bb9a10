package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/swipelist/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Rows       int

	// Version is the formatted build string shown in the TUI
	Version string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "swipelist", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/swipelist/swipelist.log
// On Linux: $XDG_STATE_HOME/swipelist/swipelist.log (defaults to ~/.local/state/swipelist/swipelist.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "swipelist", "swipelist.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "swipelist", "swipelist.log")
	}

	return filepath.Join(home, ".local", "state", "swipelist", "swipelist.log")
}
