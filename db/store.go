package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/batch"
	"github.com/teranos/condax/entity"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
)

// Value domains recorded in entity_values
const (
	DomainCharacter  = "character"
	DomainOccupation = "occupation"
)

// Store persists batch runs and their entities
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewStore wraps an open, migrated database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, logger: logger.ComponentLogger("db.store")}
}

// SaveRun writes run metadata and all entities in one transaction
func (s *Store) SaveRun(ctx context.Context, run batch.Run, entities []entity.Entity) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin save run")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, generator, version, start_seed, count, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Generator, run.Version, run.StartSeed, run.Count, run.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrapf(err, "insert run %s", run.ID)
	}

	for _, e := range entities {
		if err := insertEntity(ctx, tx, run.ID, e); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "commit run %s", run.ID)
	}

	s.logger.Infow("Saved batch run",
		logger.FieldRunID, run.ID,
		logger.FieldCount, len(entities))
	return nil
}

func insertEntity(ctx context.Context, tx *sql.Tx, runID string, e entity.Entity) error {
	character, err := json.Marshal(e.Character)
	if err != nil {
		return errors.Wrapf(err, "encode character for seed %d", e.Seed)
	}
	facial, err := json.Marshal(e.Facial)
	if err != nil {
		return errors.Wrapf(err, "encode facial for seed %d", e.Seed)
	}
	occupation, err := json.Marshal(e.Occupation)
	if err != nil {
		return errors.Wrapf(err, "encode occupation for seed %d", e.Seed)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO entities (run_id, seed, character, facial, occupation, prompt) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, e.Seed, string(character), string(facial), string(occupation), e.Prompt())
	if err != nil {
		return errors.Wrapf(err, "insert entity seed %d", e.Seed)
	}

	for _, d := range []struct {
		domain string
		values axis.Assignment
	}{{DomainCharacter, e.Character}, {DomainOccupation, e.Occupation}} {
		domain := d.domain
		for i, p := range d.values.Pairs() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO entity_values (run_id, seed, domain, axis, value, position) VALUES (?, ?, ?, ?, ?, ?)`,
				runID, e.Seed, domain, p.Axis, p.Value, i)
			if err != nil {
				return errors.Wrapf(err, "insert %s.%s for seed %d", domain, p.Axis, e.Seed)
			}
		}
	}
	return nil
}

// GetRun loads run metadata by ID
func (s *Store) GetRun(ctx context.Context, id string) (batch.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, generator, version, start_seed, count, created_at FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return batch.Run{}, errors.NewNotFoundError("run %s", id)
	}
	return run, err
}

// ListRuns returns all runs, newest first
func (s *Store) ListRuns(ctx context.Context) ([]batch.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, generator, version, start_seed, count, created_at FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, errors.Wrap(err, "query runs")
	}
	defer rows.Close()

	var runs []batch.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, errors.Wrap(rows.Err(), "iterate runs")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (batch.Run, error) {
	var (
		run     batch.Run
		created string
	)
	if err := row.Scan(&run.ID, &run.Generator, &run.Version, &run.StartSeed, &run.Count, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return batch.Run{}, err
		}
		return batch.Run{}, errors.Wrap(err, "scan run")
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return batch.Run{}, errors.Wrapf(err, "parse created_at of run %s", run.ID)
	}
	run.CreatedAt = t
	return run, nil
}

// ListEntities returns the entities of a run ordered by seed
func (s *Store) ListEntities(ctx context.Context, runID string) ([]entity.Entity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seed, character, facial, occupation FROM entities WHERE run_id = ? ORDER BY seed`, runID)
	if err != nil {
		return nil, errors.Wrapf(err, "query entities of run %s", runID)
	}
	defer rows.Close()

	var out []entity.Entity
	for rows.Next() {
		var (
			e                             entity.Entity
			character, facial, occupation string
		)
		if err := rows.Scan(&e.Seed, &character, &facial, &occupation); err != nil {
			return nil, errors.Wrap(err, "scan entity")
		}
		for _, f := range []struct {
			raw string
			dst *axis.Assignment
		}{{character, &e.Character}, {facial, &e.Facial}, {occupation, &e.Occupation}} {
			if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
				return nil, errors.Wrapf(err, "decode entity seed %d", e.Seed)
			}
		}
		out = append(out, e)
	}
	return out, errors.Wrap(rows.Err(), "iterate entities")
}

// CountValues tallies how often each value of domain.axis was drawn in a run
func (s *Store) CountValues(ctx context.Context, runID, domain, axisName string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT value, COUNT(*) FROM entity_values WHERE run_id = ? AND domain = ? AND axis = ? GROUP BY value`,
		runID, domain, axisName)
	if err != nil {
		return nil, errors.Wrapf(err, "count %s.%s", domain, axisName)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			value string
			n     int
		)
		if err := rows.Scan(&value, &n); err != nil {
			return nil, errors.Wrap(err, "scan count")
		}
		counts[value] = n
	}
	return counts, errors.Wrap(rows.Err(), "iterate counts")
}

// DeleteRun removes a run and its entities
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return errors.Wrapf(err, "delete run %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "delete run %s", id)
	}
	if n == 0 {
		return errors.NewNotFoundError("run %s", id)
	}
	return nil
}
