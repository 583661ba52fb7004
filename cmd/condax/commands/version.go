package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/condax/display"
	"github.com/teranos/condax/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show condax version information",
		Long:  `Display version, build time, commit hash, and platform information for the condax binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, info)
			}
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
