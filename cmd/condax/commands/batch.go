package commands

import (
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/condax/am"
	"github.com/teranos/condax/batch"
	"github.com/teranos/condax/db"
	"github.com/teranos/condax/display"
	"github.com/teranos/condax/entity"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
	"github.com/teranos/condax/sym"
)

type batchOptions struct {
	start     int64
	count     int
	workers   int
	format    string
	out       string
	archetype string
}

func newBatchCmd(a *app) *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch",
		Short: sym.Short("batch"),
		Long: `Generate entities for seeds --start .. --start+count-1 and export them.

Formats:
  table   Seed and prompt per entity (default)
  json    Run metadata and entities
  csv     One column per axis plus full_prompt
  sqlite  Saved as a run in --out or database.path; see 'condax runs'

Output is identical for any --workers value.

Examples:
  condax batch --count 20
  condax batch --start 1000 --count 500 --format csv --out people.csv
  condax batch --count 1000 --format sqlite --workers 8
  condax batch --count 5000 --archetype "hidden scholar" --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				opts.count = a.cfg.Generate.Count
			}
			if !cmd.Flags().Changed("workers") {
				opts.workers = a.cfg.Generate.Workers
			}
			if !cmd.Flags().Changed("format") {
				opts.format = a.cfg.Generate.Format
			}
			if display.ShouldOutputJSON(cmd) && !cmd.Flags().Changed("format") {
				opts.format = am.FormatJSON
			}
			return a.runBatch(cmd, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.start, "start", 0, "First seed")
	cmd.Flags().IntVarP(&opts.count, "count", "n", am.DefaultCount, "Number of seeds (default from generate.count)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", am.DefaultWorkers, "Parallel workers, 0 = one per CPU (default from generate.workers)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", am.DefaultFormat, "Output format: "+strings.Join(am.Formats, ", "))
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (stdout when omitted; database path for sqlite)")
	cmd.Flags().StringVar(&opts.archetype, "archetype", "", "Keep only entities matching this archetype")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, opts batchOptions) error {
	if opts.count < 0 {
		return errors.NewInvalidInputError("--count must not be negative, got %d", opts.count)
	}
	if !slices.Contains(am.Formats, opts.format) {
		return errors.WithHintf(
			errors.NewInvalidInputError("unsupported format %q", opts.format),
			"supported formats: %s", strings.Join(am.Formats, ", "),
		)
	}

	var keep *entity.Archetype
	if opts.archetype != "" {
		arch, err := entity.LookupArchetype(opts.archetype)
		if err != nil {
			return err
		}
		keep = &arch
	}

	run := batch.NewRun(opts.start, opts.count)
	ctx := logger.WithRunID(cmd.Context(), run.ID)

	if logger.ShouldOutput(a.verbosity, logger.OutputRunInfo) {
		display.Info(cmd.ErrOrStderr(), "run %s: seeds %d..%d, %d workers",
			run.ID, opts.start, opts.start+int64(opts.count)-1, opts.workers)
	}

	entities, err := batch.Parallel(ctx, opts.start, opts.count, opts.workers)
	if err != nil {
		return err
	}
	if keep != nil {
		entities = batch.Filter(entities, keep.Matches)
		if logger.ShouldOutput(a.verbosity, logger.OutputProgress) {
			display.Info(cmd.ErrOrStderr(), "%d of %d entities are %s", len(entities), opts.count, keep.Name)
		}
	}

	if opts.format == am.FormatSQLite {
		return a.saveBatch(cmd, opts, run, entities)
	}

	w := cmd.OutOrStdout()
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return errors.Wrapf(err, "create %s", opts.out)
		}
		defer f.Close()
		w = f
	}

	if err := writeBatch(w, opts.format, run, entities); err != nil {
		return err
	}
	if opts.out != "" {
		display.Success(cmd.ErrOrStderr(), "Wrote %d entities to %s", len(entities), opts.out)
	}
	return nil
}

func writeBatch(w io.Writer, format string, run batch.Run, entities []entity.Entity) error {
	switch format {
	case am.FormatJSON:
		return batch.WriteJSON(w, run, entities)
	case am.FormatCSV:
		return batch.WriteCSV(w, entities)
	default:
		rows := make([][]string, 0, len(entities))
		for _, e := range entities {
			rows = append(rows, []string{strconv.FormatInt(e.Seed, 10), e.Prompt()})
		}
		return display.Table(w, []string{"seed", "prompt"}, rows)
	}
}

func (a *app) saveBatch(cmd *cobra.Command, opts batchOptions, run batch.Run, entities []entity.Entity) error {
	path := opts.out
	if path == "" {
		path = a.cfg.GetDatabasePath()
	}

	database, err := db.OpenWithMigrations(path, logger.ComponentLogger("db"))
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	if err := db.NewStore(database).SaveRun(cmd.Context(), run, entities); err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]interface{}{
			"run":      run,
			"database": path,
			"saved":    len(entities),
		})
	}
	display.Success(cmd.OutOrStdout(), "Saved run %s (%d entities) to %s", run.ID, len(entities), path)
	return nil
}
