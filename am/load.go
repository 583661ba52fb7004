package am

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/condax/errors"
)

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper
	explicitFile  string

	// ConfigSources records which source supplied each key during the last load
	ConfigSources = map[string]SourceInfo{}
)

// Load reads the condax configuration using Viper. The result is cached
// until Reset.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	v, err := initViper()
	if err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() (*viper.Viper, error) {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path, on top of
// defaults and without environment overrides
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", configPath)
	}
	return config, nil
}

// SetConfigFile makes path the highest-precedence config file. It must be
// called before Load; a missing file is an error at load time.
func SetConfigFile(path string) {
	mu.Lock()
	defer mu.Unlock()
	explicitFile = path
	globalConfig = nil
	viperInstance = nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	explicitFile = ""
	ConfigSources = map[string]SourceInfo{}
}

// initViper initializes Viper with configuration sources and defaults.
// Callers hold mu.
func initViper() (*viper.Viper, error) {
	if viperInstance != nil {
		return viperInstance, nil
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	sources, err := mergeConfigFiles(v, configPaths())
	if err != nil {
		return nil, err
	}
	ConfigSources = sources

	viperInstance = v
	return v, nil
}

// configFile is one candidate in the precedence chain
type configFile struct {
	path     string
	source   ConfigSource
	required bool
}

// configPaths returns candidate files from lowest to highest precedence
func configPaths() []configFile {
	paths := []configFile{
		{path: filepath.Join("/etc", "condax", ConfigFileName), source: SourceSystem},
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, configFile{path: filepath.Join(home, ".condax", ConfigFileName), source: SourceUser})
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, configFile{path: project, source: SourceProject})
	}
	if explicitFile != "" {
		paths = append(paths, configFile{path: explicitFile, source: SourceFlag, required: true})
	}
	return paths
}

// findProjectConfig searches for condax.toml by walking up the directory tree
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges files in order, later files overriding earlier
// ones, and returns the source of every key that came from a file
func mergeConfigFiles(v *viper.Viper, files []configFile) (map[string]SourceInfo, error) {
	sources := map[string]SourceInfo{}

	for _, f := range files {
		if _, err := os.Stat(f.path); err != nil {
			if f.required {
				return nil, errors.WithHint(
					errors.Wrapf(err, "config file %s", f.path),
					"check the --config path",
				)
			}
			continue
		}

		tmp := viper.New()
		tmp.SetConfigFile(f.path)
		tmp.SetConfigType("toml")
		if err := tmp.ReadInConfig(); err != nil {
			if f.required {
				return nil, errors.NewConfigurationError("config file %s: %v", f.path, err)
			}
			continue
		}

		// config layer, so CONDAX_* variables still win
		if err := v.MergeConfigMap(tmp.AllSettings()); err != nil {
			return nil, errors.Wrapf(err, "merge config file %s", f.path)
		}
		for _, key := range tmp.AllKeys() {
			sources[key] = SourceInfo{Source: f.source, Path: f.path}
		}
	}

	return sources, nil
}
