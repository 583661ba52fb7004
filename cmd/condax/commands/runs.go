package commands

import (
	"database/sql"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/condax/am"
	"github.com/teranos/condax/db"
	"github.com/teranos/condax/display"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
	"github.com/teranos/condax/sym"
)

func newRunsCmd(a *app) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: sym.Short("runs"),
		Long: `Inspect batches saved with 'condax batch --format sqlite'.

Examples:
  condax runs ls
  condax runs show <run-id>
  condax runs stats <run-id> --domain character --axis wealth
  condax runs rm <run-id>`,
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default from database.path)")

	open := func() (*sql.DB, *db.Store, error) {
		path := dbPath
		if path == "" {
			path = a.cfg.GetDatabasePath()
		}
		database, err := db.OpenWithMigrations(path, logger.ComponentLogger("db"))
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open database")
		}
		return database, db.NewStore(database), nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, store, err := open()
			if err != nil {
				return err
			}
			defer database.Close()

			runs, err := store.ListRuns(cmd.Context())
			if err != nil {
				return err
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), runs)
			}

			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					r.ID,
					r.CreatedAt.Local().Format(time.DateTime),
					strconv.FormatInt(r.StartSeed, 10),
					strconv.Itoa(r.Count),
					r.Version,
				})
			}
			return display.Table(cmd.OutOrStdout(), []string{"id", "created", "start", "count", "version"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the entities of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, store, err := open()
			if err != nil {
				return err
			}
			defer database.Close()

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			entities, err := store.ListEntities(cmd.Context(), run.ID)
			if err != nil {
				return err
			}
			return writeBatch(cmd.OutOrStdout(), showFormat(cmd), run, entities)
		},
	})

	var domain, axisName string
	stats := &cobra.Command{
		Use:   "stats <run-id>",
		Short: "Count how often each value of an axis was drawn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, store, err := open()
			if err != nil {
				return err
			}
			defer database.Close()

			if _, err := store.GetRun(cmd.Context(), args[0]); err != nil {
				return err
			}
			counts, err := store.CountValues(cmd.Context(), args[0], domain, axisName)
			if err != nil {
				return err
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), counts)
			}

			values := make([]string, 0, len(counts))
			for v := range counts {
				values = append(values, v)
			}
			// most frequent first
			sort.Slice(values, func(i, j int) bool {
				if counts[values[i]] != counts[values[j]] {
					return counts[values[i]] > counts[values[j]]
				}
				return values[i] < values[j]
			})
			rows := make([][]string, 0, len(values))
			for _, v := range values {
				rows = append(rows, []string{v, strconv.Itoa(counts[v])})
			}
			return display.Table(cmd.OutOrStdout(), []string{axisName, "count"}, rows)
		},
	}
	stats.Flags().StringVar(&domain, "domain", db.DomainCharacter, "Domain: character or occupation")
	stats.Flags().StringVar(&axisName, "axis", "wealth", "Axis to tally")
	cmd.AddCommand(stats)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <run-id>",
		Short: "Delete a run and its entities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, store, err := open()
			if err != nil {
				return err
			}
			defer database.Close()

			if err := store.DeleteRun(cmd.Context(), args[0]); err != nil {
				return err
			}
			display.Success(cmd.OutOrStdout(), "Deleted run %s", args[0])
			return nil
		},
	})

	return cmd
}

// showFormat picks json for --json and the table layout otherwise
func showFormat(cmd *cobra.Command) string {
	if display.ShouldOutputJSON(cmd) {
		return am.FormatJSON
	}
	return am.FormatTable
}
