package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/batch"
	"github.com/teranos/condax/entity"
	"github.com/teranos/condax/errors"
)

func mockEntity() entity.Entity {
	return entity.Entity{
		Seed:       9,
		Character:  axis.AssignmentOf(axis.Pair{Axis: "physique", Value: "wiry"}),
		Occupation: axis.AssignmentOf(axis.Pair{Axis: "legitimacy", Value: "illicit"}),
	}
}

func TestSaveRun_Sqlmock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	run := batch.NewRun(9, 1)
	e := mockEntity()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO runs`).
		WithArgs(run.ID, run.Generator, run.Version, run.StartSeed, run.Count, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO entities`).
		WithArgs(run.ID, e.Seed, `{"physique":"wiry"}`, `{}`, `{"legitimacy":"illicit"}`, "wiry, illicit").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO entity_values`).
		WithArgs(run.ID, e.Seed, DomainCharacter, "physique", "wiry", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO entity_values`).
		WithArgs(run.ID, e.Seed, DomainOccupation, "legitimacy", "illicit", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, NewStore(db).SaveRun(context.Background(), run, []entity.Entity{e}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_SqlmockRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	run := batch.NewRun(9, 1)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO runs`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO entities`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = NewStore(db).SaveRun(context.Background(), run, []entity.Entity{mockEntity()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert entity seed 9")
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountValues_SqlmockQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT value, COUNT\(\*\) FROM entity_values`).
		WithArgs("run-1", DomainCharacter, "wealth").
		WillReturnError(errors.New("boom"))

	_, err = NewStore(db).CountValues(context.Background(), "run-1", DomainCharacter, "wealth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count character.wealth")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns_Sqlmock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "generator", "version", "start_seed", "count", "created_at"}).
		AddRow("a", "condax", "1.0.0", 0, 10, "2026-01-02T03:04:05Z").
		AddRow("b", "condax", "1.0.0", 10, 5, "not-a-time")
	mock.ExpectQuery(`SELECT id, generator, version, start_seed, count, created_at FROM runs`).WillReturnRows(rows)

	_, err = NewStore(db).ListRuns(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse created_at of run b")
}
