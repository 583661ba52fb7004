// Package commands implements the condax command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/condax/am"
	"github.com/teranos/condax/domains"
	"github.com/teranos/condax/logger"
)

// app carries state shared by all subcommands of one invocation
type app struct {
	cfg       *am.Config
	verbosity int
	registry  *domains.Registry
}

// NewRootCmd builds the condax command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "condax",
		Short: "condax - seeded condition-axis generation",
		Long: `condax - seeded condition-axis generation

Draws compact, reproducible condition sets for characters and their
occupations from weighted axis tables, and renders them as prompt
fragments, narratives or image prompts.

Available commands:
  generate  - Draw conditions from one domain
  entity    - Draw a full entity (character + occupation)
  batch     - Generate a seed range and export it
  runs      - Inspect batches exported to SQLite
  axes      - Show a domain's axes, policy and exclusions
  domains   - List registered domains
  archetype - Search seeds for a narrative archetype
  am        - Manage condax configuration ("I am")

Examples:
  condax generate --seed 42              # Character conditions for seed 42
  condax generate occupation --count 5   # Five occupation profiles
  condax entity --seed 7 --narrative     # Entity with narrative text
  condax batch --count 100 --format csv  # CSV export to stdout`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("json", false, "Output results as JSON")
	root.PersistentFlags().String("config", "", "Config file (highest precedence below CONDAX_* variables)")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newEntityCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newRunsCmd(a))
	root.AddCommand(newAxesCmd(a))
	root.AddCommand(newDomainsCmd(a))
	root.AddCommand(newArchetypeCmd(a))
	root.AddCommand(newAmCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads configuration and initializes the logger before any command runs
func (a *app) setup(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		am.SetConfigFile(path)
	}

	cfg, err := am.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	// am subcommands report invalid configuration themselves
	if !isAmCommand(cmd) {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.verbosity, _ = cmd.Flags().GetCount("verbose")
	logger.SetTheme(cfg.GetLogTheme())
	if err := logger.Initialize(cfg.Log.JSON, a.verbosity); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func isAmCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "am" {
			return true
		}
	}
	return false
}

// domains returns the built-in registry plus configured table files,
// loading the files on first use
func (a *app) domains() (*domains.Registry, error) {
	if a.registry != nil {
		return a.registry, nil
	}

	r := domains.Builtin()
	if err := r.RegisterFiles(a.cfg.Tables.Paths); err != nil {
		return nil, err
	}
	if len(a.cfg.Tables.Paths) > 0 {
		logger.Debugw("Loaded table files", logger.FieldCount, len(a.cfg.Tables.Paths))
	}

	a.registry = r
	return r, nil
}

// domainArg returns args[i] or the configured default domain
func (a *app) domainArg(args []string, i int) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	return a.cfg.GetDomain()
}
