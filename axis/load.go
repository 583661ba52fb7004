package axis

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
)

// SchemaConstraint is the table file schema range this version understands
const SchemaConstraint = "^1.0.0"

// Table file formats accepted by Parse
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// tableFile is the on-disk shape of a domain table
type tableFile struct {
	Schema     string  `yaml:"schema" toml:"schema"`
	Name       string  `yaml:"name" toml:"name"`
	Axes       []Axis  `yaml:"axes" toml:"axes"`
	Weights    Weights `yaml:"weights" toml:"weights"`
	Policy     Policy  `yaml:"policy" toml:"policy"`
	Exclusions []Rule  `yaml:"exclusions" toml:"exclusions"`
}

// LoadFile reads a YAML (.yaml, .yml) or TOML (.toml) table file and builds
// a validated Domain from it. Axes and rules keep file order.
func LoadFile(path string, opts ...DomainOption) (*Domain, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read table file %s", path)
	}

	d, err := Parse(data, format, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "table file %s", path)
	}

	logger.ComponentLogger("axis").Debugw("Loaded domain table",
		logger.FieldFile, path,
		logger.FieldDomain, d.Name(),
		logger.FieldCount, len(d.order))
	return d, nil
}

// Parse decodes a table document in the given format and validates it.
// Unknown keys are rejected so typos do not silently drop rules.
func Parse(data []byte, format string, opts ...DomainOption) (*Domain, error) {
	var tf tableFile

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tf); err != nil {
			return nil, errors.NewConfigurationError("decode yaml: %v", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&tf)
		if err != nil {
			return nil, errors.NewConfigurationError("decode toml: %v", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.NewConfigurationError("unknown keys: %v", undecoded)
		}
	default:
		return nil, errors.WithHint(
			errors.NewConfigurationError("unsupported table format %q", format),
			"use yaml or toml",
		)
	}

	if err := checkSchema(tf.Schema); err != nil {
		return nil, err
	}

	return NewDomain(tf.Name, tf.Axes, tf.Weights, tf.Policy, tf.Exclusions, opts...)
}

func checkSchema(schema string) error {
	if schema == "" {
		return errors.WithHintf(
			errors.NewConfigurationError("table file has no schema version"),
			"add schema: \"1.0.0\" (supported: %s)", SchemaConstraint,
		)
	}

	v, err := semver.NewVersion(schema)
	if err != nil {
		return errors.NewConfigurationError("invalid schema version %q: %v", schema, err)
	}

	constraint, err := semver.NewConstraint(SchemaConstraint)
	if err != nil {
		return errors.AssertionFailedf("invalid schema constraint %q: %v", SchemaConstraint, err)
	}

	if !constraint.Check(v) {
		return errors.WithHintf(
			errors.NewConfigurationError("schema %s does not satisfy %s", v, SchemaConstraint),
			"this build of condax reads table schema %s", SchemaConstraint,
		)
	}
	return nil
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithHint(
			errors.NewConfigurationError("unsupported table file extension %q", filepath.Ext(path)),
			"use .yaml, .yml or .toml",
		)
	}
}
