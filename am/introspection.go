package am

import (
	"os"
	"sort"
	"strings"

	"github.com/teranos/condax/errors"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/condax/condax.toml
	SourceUser        ConfigSource = "user"        // ~/.condax/condax.toml
	SourceProject     ConfigSource = "project"     // nearest condax.toml
	SourceFlag        ConfigSource = "flag"        // --config
	SourceEnvironment ConfigSource = "environment" // CONDAX_* env vars
)

// SourceOrder lists sources from lowest to highest precedence
var SourceOrder = []ConfigSource{
	SourceDefault,
	SourceSystem,
	SourceUser,
	SourceProject,
	SourceFlag,
	SourceEnvironment,
}

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource
	Path   string // file path or environment variable name
}

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key"`
	Value      interface{}  `json:"value"`
	Source     ConfigSource `json:"source"`
	SourcePath string       `json:"source_path,omitempty"`
}

// ConfigIntrospection provides metadata about the active configuration
type ConfigIntrospection struct {
	Settings []SettingInfo `json:"settings"`
}

// GetConfigIntrospection returns every effective setting with the source
// that supplied it
func GetConfigIntrospection() (*ConfigIntrospection, error) {
	v, err := GetViper()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config for introspection")
	}

	mu.Lock()
	sources := make(map[string]SourceInfo, len(ConfigSources))
	for k, s := range ConfigSources {
		sources[k] = s
	}
	mu.Unlock()

	intro := &ConfigIntrospection{Settings: make([]SettingInfo, 0, len(settingKeys))}
	flattenSettingsWithSources(v.AllSettings(), "", intro, sources)
	return intro, nil
}

// flattenSettingsWithSources flattens nested settings in key order
func flattenSettingsWithSources(settings map[string]interface{}, prefix string, intro *ConfigIntrospection, sourceMap map[string]SourceInfo) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]interface{}); ok {
			flattenSettingsWithSources(nested, fullKey, intro, sourceMap)
			continue
		}

		info := SourceInfo{Source: SourceDefault}
		if si, ok := sourceMap[fullKey]; ok {
			info = si
		}

		envKey := EnvVarName(fullKey)
		if _, ok := os.LookupEnv(envKey); ok {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		intro.Settings = append(intro.Settings, SettingInfo{
			Key:        fullKey,
			Value:      value,
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
}

// EnvVarName returns the environment variable for a dotted key
func EnvVarName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// CountBySource counts settings per source
func (ci *ConfigIntrospection) CountBySource() map[ConfigSource]int {
	counts := make(map[ConfigSource]int)
	for _, s := range ci.Settings {
		counts[s.Source]++
	}
	return counts
}
