package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/display"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
	"github.com/teranos/condax/sym"
)

// generated is one row of generate output
type generated struct {
	Seed       int64           `json:"seed"`
	Domain     string          `json:"domain"`
	Conditions axis.Assignment `json:"conditions"`
	Prompt     string          `json:"prompt"`
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed  int64
		count int
	)

	cmd := &cobra.Command{
		Use:   "generate [domain]",
		Short: sym.Short("generate"),
		Long: `Draw one condition set per seed from a domain and print its prompt fragment.

Seeds run from --seed to --seed+count-1. Without --seed a random base
seed is drawn and reported, so any output can be reproduced.

Examples:
  condax generate --seed 42
  condax generate occupation --seed 1 --count 10
  condax generate magic --json          # domain loaded from tables.paths`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Generate.Count
			}
			if count < 0 {
				return errors.NewInvalidInputError("--count must not be negative, got %d", count)
			}
			if !cmd.Flags().Changed("seed") {
				s, err := axis.NewSeed()
				if err != nil {
					return err
				}
				seed = s
			}
			return a.runGenerate(cmd, a.domainArg(args, 0), seed, count)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Base seed (random when omitted)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of seeds to draw (default from generate.count)")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, domainName string, seed int64, count int) error {
	reg, err := a.domains()
	if err != nil {
		return err
	}
	entry, err := reg.Entry(domainName)
	if err != nil {
		return err
	}
	if entry.Deprecated {
		logger.Warnw("Domain is deprecated", logger.FieldDomain, domainName)
	}

	results := make([]generated, 0, count)
	for i := 0; i < count; i++ {
		s := seed + int64(i)
		conds, err := entry.Domain.Generate(axis.WithSeed(s))
		if err != nil {
			return errors.Wrapf(err, "generate %s seed %d", domainName, s)
		}
		results = append(results, generated{
			Seed:       s,
			Domain:     domainName,
			Conditions: conds,
			Prompt:     conds.Prompt(),
		})
	}

	out := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(out, results)
	}

	if logger.ShouldOutput(a.verbosity, logger.OutputRunInfo) {
		display.Info(cmd.ErrOrStderr(), "%s seeds %d..%d", domainName, seed, seed+int64(count)-1)
	}

	// a single draw prints just the fragment so it can be piped
	if len(results) == 1 {
		_, err := fmt.Fprintln(out, results[0].Prompt)
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{strconv.FormatInt(r.Seed, 10), r.Prompt})
	}
	return display.Table(out, []string{"seed", "prompt"}, rows)
}
