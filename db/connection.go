// Package db stores exported batches in SQLite.
package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
)

// SQLiteBusyTimeoutMS is how long a writer waits on a locked database
const SQLiteBusyTimeoutMS = 5000

// Open opens a SQLite database at the specified path with optimized settings.
// If log is provided, logs database operations; otherwise operates silently.
func Open(path string, log *zap.SugaredLogger) (*sql.DB, error) {
	if log != nil {
		log.Debugw("Opening database", logger.FieldPath, path)
	}
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}

	// foreign keys and busy timeout are per connection and come from the DSN;
	// journal mode is stored in the file
	pragmas := []struct{ stmt, what string }{
		// WAL allows concurrent reads during writes
		{"PRAGMA journal_mode = WAL", "enable WAL mode"},
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p.stmt); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "failed to %s", p.what)
		}
	}

	if log != nil {
		log.Infow("Database opened",
			logger.FieldPath, path,
			"wal_mode", true,
			"foreign_keys", true,
		)
	}

	return db, nil
}

// dsn adds per-connection settings to path
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_foreign_keys=on&_busy_timeout=%d", path, sep, SQLiteBusyTimeoutMS)
}

// OpenWithMigrations opens the database and applies pending migrations
func OpenWithMigrations(path string, log *zap.SugaredLogger) (*sql.DB, error) {
	db, err := Open(path, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, log); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "failed to migrate %s", path)
	}
	return db, nil
}
