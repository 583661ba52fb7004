package am

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/teranos/condax/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Empty domain falls back to DefaultDomain; whether it exists is checked
	// against the registry when a command runs

	// Count: 0 is allowed (generate nothing), negative is invalid
	if c.Generate.Count < 0 {
		return errors.NewConfigurationError("generate.count must be >= 0, got %d", c.Generate.Count)
	}

	// Workers: 0 = one per CPU, negative is invalid
	if c.Generate.Workers < 0 {
		return errors.NewConfigurationError("generate.workers must be >= 0, got %d", c.Generate.Workers)
	}

	if c.Generate.Format != "" && !slices.Contains(Formats, c.Generate.Format) {
		return errors.WithHintf(
			errors.NewConfigurationError("generate.format %q is not supported", c.Generate.Format),
			"supported formats: %s", strings.Join(Formats, ", "),
		)
	}

	for i, p := range c.Tables.Paths {
		if p == "" {
			return errors.NewConfigurationError("tables.paths[%d] is empty", i)
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".yaml", ".yml", ".toml":
		default:
			return errors.WithHint(
				errors.NewConfigurationError("tables.paths[%d] %q has unknown extension", i, p),
				"domain tables must be .yaml, .yml or .toml",
			)
		}
	}

	if c.Log.Theme != "" && !slices.Contains(Themes, c.Log.Theme) {
		return errors.WithHintf(
			errors.NewConfigurationError("log.theme %q is not supported", c.Log.Theme),
			"supported themes: %s", strings.Join(Themes, ", "),
		)
	}

	return nil
}
