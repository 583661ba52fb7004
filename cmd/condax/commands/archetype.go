package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/condax/display"
	"github.com/teranos/condax/entity"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/sym"
)

// DefaultArchetypeRange is how many seeds archetype scans by default
const DefaultArchetypeRange = 10000

func newArchetypeCmd(a *app) *cobra.Command {
	var from, to int64

	cmd := &cobra.Command{
		Use:   "archetype [name]",
		Short: sym.Short("archetype"),
		Long: `Find the first seed in [--from, --to) whose entity matches an archetype.
Without a name, list the available archetypes.

Examples:
  condax archetype
  condax archetype "desperate outlaw"
  condax archetype "The Hidden Scholar" --from 5000 --to 20000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				var names []string
				for _, arch := range entity.Archetypes() {
					names = append(names, arch.Name)
				}
				if display.ShouldOutputJSON(cmd) {
					return display.OutputJSON(out, names)
				}
				rows := make([][]string, 0, len(names))
				for _, n := range names {
					rows = append(rows, []string{n})
				}
				return display.Table(out, []string{"archetype"}, rows)
			}

			if to <= from {
				return errors.NewInvalidInputError("--to (%d) must be greater than --from (%d)", to, from)
			}
			arch, err := entity.LookupArchetype(args[0])
			if err != nil {
				return err
			}
			e, err := entity.FindArchetype(arch, from, to)
			if err != nil {
				return err
			}

			result := entityOutput{Entity: e, Prompt: e.Prompt(), Narrative: e.Narrative()}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, result)
			}
			display.Success(out, "%s found at seed %d", arch.Name, e.Seed)
			return display.KeyValues(out, entityRows(result))
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "First seed to scan")
	cmd.Flags().Int64Var(&to, "to", DefaultArchetypeRange, "Stop before this seed")

	return cmd
}
