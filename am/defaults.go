package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default values
const (
	DefaultDomain       = "character"
	DefaultCount        = 1
	DefaultWorkers      = 0
	DefaultFormat       = FormatTable
	DefaultDatabasePath = "condax.db"
	DefaultTheme        = "everforest"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generate.domain", DefaultDomain)
	v.SetDefault("generate.count", DefaultCount)
	v.SetDefault("generate.workers", DefaultWorkers)
	v.SetDefault("generate.format", DefaultFormat)

	v.SetDefault("tables.paths", []string{})

	v.SetDefault("database.path", DefaultDatabasePath)

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultTheme)
}

// BindEnvVars binds every setting to its CONDAX_* variable
// (generate.count -> CONDAX_GENERATE_COUNT)
func BindEnvVars(v *viper.Viper) {
	for _, key := range settingKeys {
		v.BindEnv(key)
	}
}

// settingKeys lists every leaf key of Config
var settingKeys = []string{
	"generate.domain",
	"generate.count",
	"generate.workers",
	"generate.format",
	"tables.paths",
	"database.path",
	"log.json",
	"log.theme",
}

// GetDatabasePath returns the configured database path
func (c *Config) GetDatabasePath() string {
	if c.Database.Path == "" {
		return DefaultDatabasePath
	}
	return c.Database.Path
}

// GetLogTheme returns the log theme (default: everforest)
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return DefaultTheme
	}
	return c.Log.Theme
}

// GetDomain returns the default generation domain
func (c *Config) GetDomain() string {
	if c.Generate.Domain == "" {
		return DefaultDomain
	}
	return c.Generate.Domain
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Generate: {Domain: %s, Count: %d, Workers: %d, Format: %s}, Tables: %d, Database: %s}",
		c.Generate.Domain, c.Generate.Count, c.Generate.Workers, c.Generate.Format,
		len(c.Tables.Paths), c.Database.Path)
}
