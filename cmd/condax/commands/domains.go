package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/condax/display"
	"github.com/teranos/condax/sym"
)

// domainSummary is one row of the domains command
type domainSummary struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Axes       int    `json:"axes"`
	Exclusions int    `json:"exclusions"`
	Deprecated bool   `json:"deprecated,omitempty"`
}

func newDomainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: sym.Short("domains"),
		Long:  "List built-in domains and those loaded from tables.paths.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.domains()
			if err != nil {
				return err
			}

			var list []domainSummary
			for _, name := range reg.List() {
				e, err := reg.Entry(name)
				if err != nil {
					return err
				}
				list = append(list, domainSummary{
					Name:       name,
					Source:     e.Source,
					Axes:       len(e.Domain.Axes()),
					Exclusions: len(e.Domain.Rules()),
					Deprecated: e.Deprecated,
				})
			}

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), list)
			}

			rows := make([][]string, 0, len(list))
			for _, d := range list {
				name := d.Name
				if d.Deprecated {
					name += " " + display.Muted("(deprecated)")
				}
				rows = append(rows, []string{name, d.Source, strconv.Itoa(d.Axes), strconv.Itoa(d.Exclusions)})
			}
			return display.Table(cmd.OutOrStdout(), []string{"domain", "source", "axes", "exclusions"}, rows)
		},
	}
}
