package config

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/swipelist/internal/core/styles"
)

// ValidateDeep performs Validate plus field-level checks: theme name, snap
// widths, key conflicts and config file accessibility. Problems are reported
// as criterio.FieldErrors. An empty configPath skips the file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("tui.left_snap", c.TUI.LeftSnap, fitsLabel(deleteLabel)),
		criterio.Run("tui.right_snap", c.TUI.RightSnap, fitsLabel(closeLabel)),
		c.validateKeys(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

// fitsLabel requires a snap width that shows label with a cell of padding
// on each side.
func fitsLabel(label string) func(int) error {
	return func(width int) error {
		if need := len(label) + 2; width < need {
			return fmt.Errorf("must be at least %d to fit %q", need, label)
		}
		return nil
	}
}

// validateKeys reports keys bound to more than one action.
func (c *Config) validateKeys() error {
	var errs criterio.FieldErrorsBuilder

	owner := make(map[string]string)
	for _, action := range slices.Sorted(maps.Keys(c.Keys)) {
		for _, k := range c.Keys[action] {
			if k == "" {
				errs = errs.Append(fmt.Sprintf("keys.%s", action), fmt.Errorf("empty key"))
				continue
			}
			if prev, ok := owner[k]; ok {
				errs = errs.Append(fmt.Sprintf("keys.%s", action), fmt.Errorf("key %q already bound to %s", k, prev))
				continue
			}
			owner[k] = action
		}
	}

	return errs.ToError()
}
