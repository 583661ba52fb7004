package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/condax/am"
	"github.com/teranos/condax/display"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/sym"
)

func newAmCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: sym.Short("am"),
		Long: `am - Manage condax configuration ("I am")

Configuration sources (in order of precedence):
1. Environment variables (CONDAX_* prefix, e.g. CONDAX_GENERATE_COUNT)
2. --config file
3. Project config (./condax.toml, searching up directories)
4. User config (~/.condax/condax.toml)
5. System config (/etc/condax/condax.toml)
6. Default values

Examples:
  condax am show                    # Show current configuration
  condax am show --format json      # Show configuration in JSON format
  condax am get generate.domain     # Get specific config value
  condax am validate                # Validate current configuration
  condax am where                   # Show where each value comes from`,
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current condax configuration from all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if display.ShouldOutputJSON(cmd) && !cmd.Flags().Changed("format") {
				format = "json"
			}
			return showConfig(cmd, a.cfg, format)
		},
	}
	show.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	cmd.AddCommand(show)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a configuration value using dot notation (e.g., generate.domain, database.path)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := am.GetViper()
			if err != nil {
				return err
			}
			if !v.IsSet(args[0]) {
				return errors.WithHint(
					errors.NewNotFoundError("configuration key %q", args[0]),
					"run 'condax am where' to list keys",
				)
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), map[string]interface{}{args[0]: v.Get(args[0])})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v.Get(args[0]))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Long:  "Validate the configuration and every table file in tables.paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			reg, err := a.domains()
			if err != nil {
				return errors.Wrap(err, "table validation failed")
			}
			display.Success(cmd.OutOrStdout(), "Configuration is valid (%d domains)", len(reg.List()))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long: `Show every setting with the source that supplied it.

Sources from lowest to highest precedence: default, system, user,
project, flag (--config), environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			intro, err := am.GetConfigIntrospection()
			if err != nil {
				return err
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), intro)
			}

			rows := make([][]string, 0, len(intro.Settings))
			for _, source := range am.SourceOrder {
				for _, s := range intro.Settings {
					if s.Source != source {
						continue
					}
					value := fmt.Sprintf("%v", s.Value)
					if len(value) > 50 {
						value = value[:47] + "..."
					}
					rows = append(rows, []string{s.Key, value, string(s.Source), s.SourcePath})
				}
			}
			return display.Table(cmd.OutOrStdout(), []string{"key", "value", "source", "from"}, rows)
		},
	})

	return cmd
}

func showConfig(cmd *cobra.Command, cfg *am.Config, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		_, err = fmt.Fprintf(out, "# condax configuration\n%s", data)
		return err

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		_, err = fmt.Fprintf(out, "# condax configuration\n%s", data)
		return err

	default:
		return errors.NewInvalidInputError("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}
