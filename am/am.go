// Package am loads condax configuration ("I am").
//
// Values come from built-in defaults, then /etc/condax/condax.toml, then
// ~/.condax/condax.toml, then the nearest condax.toml found walking up from
// the working directory, then an explicit file set with SetConfigFile, and
// finally CONDAX_* environment variables.
package am

// Config represents the condax configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" json:"generate" yaml:"generate" toml:"generate"`
	Tables   TablesConfig   `mapstructure:"tables" json:"tables" yaml:"tables" toml:"tables"`
	Database DatabaseConfig `mapstructure:"database" json:"database" yaml:"database" toml:"database"`
	Log      LogConfig      `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
}

// GenerateConfig holds defaults for the generate and batch commands
type GenerateConfig struct {
	Domain  string `mapstructure:"domain" json:"domain" yaml:"domain" toml:"domain"`    // domain used when none is given on the command line
	Count   int    `mapstructure:"count" json:"count" yaml:"count" toml:"count"`         // seeds per invocation
	Workers int    `mapstructure:"workers" json:"workers" yaml:"workers" toml:"workers"` // batch workers, 0 = one per CPU
	Format  string `mapstructure:"format" json:"format" yaml:"format" toml:"format"`     // batch output: table, json, csv, sqlite
}

// TablesConfig lists extra domain table files (.yaml, .yml, .toml)
type TablesConfig struct {
	Paths []string `mapstructure:"paths" json:"paths" yaml:"paths" toml:"paths"`
}

// DatabaseConfig configures the SQLite export database
type DatabaseConfig struct {
	Path string `mapstructure:"path" json:"path" yaml:"path" toml:"path"`
}

// LogConfig configures log output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
	Theme string `mapstructure:"theme" json:"theme" yaml:"theme" toml:"theme"` // everforest, gruvbox, plain
}

// Batch output formats
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// Formats lists the accepted generate.format values
var Formats = []string{FormatTable, FormatJSON, FormatCSV, FormatSQLite}

// Log themes understood by the logger
var Themes = []string{"everforest", "gruvbox", "plain"}

// File names and permissions
const (
	ConfigFileName         = "condax.toml"
	EnvPrefix              = "CONDAX"
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
