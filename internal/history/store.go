// Package history implements the persistent shell history store: a single
// SQLite file holding per-directory command usage, the search query engine
// over it, and retention cleanup.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kedare/histdb/internal/logger"
)

const (
	// DataDirName is the directory under the XDG data home holding the database.
	DataDirName = "histdb"
	// DatabaseFileName is the name of the SQLite database file.
	DatabaseFileName = "history.db"

	dataDirPermissions = 0o700
)

// Store owns the database connection for one CLI invocation. Callers open
// it, run a single operation, and close it on every exit path.
type Store struct {
	db    *sql.DB
	path  string
	log   *logger.Logger
	stats *Stats
}

// openPragmas are applied before any statement runs.
var openPragmas = []string{
	"PRAGMA busy_timeout = 5000",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
}

// Open opens the database file at path, creating it if necessary. The
// logger is required; the store logs every statement it executes at debug
// level.
func Open(path string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open history database %s: %w", path, err)
	}

	// Single local writer, one connection.
	db.SetMaxOpenConns(1)

	for _, pragma := range openPragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("cannot open history database %s: %w", path, err)
		}
	}

	log.Debugf("Opened history database: %s", path)

	return &Store{db: db, path: path, log: log, stats: newStats()}, nil
}

// Close releases the database connection, logging the operation timings
// gathered during this invocation.
func (s *Store) Close() error {
	for name, op := range s.stats.Snapshot() {
		s.log.Debugf("Operation %s: %d call(s), %v total", name, op.Count, op.Total)
	}

	return s.db.Close()
}

// Path returns the location of the underlying database file.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath resolves the database location under the XDG data directory,
// creating parent directories as needed.
func DefaultPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}

		dataHome = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(dataHome, DataDirName)
	if err := os.MkdirAll(dir, dataDirPermissions); err != nil {
		return "", fmt.Errorf("cannot create data directory %s: %w", dir, err)
	}

	return filepath.Join(dir, DatabaseFileName), nil
}

// logSQL logs a statement and its bound parameters before execution.
func (s *Store) logSQL(query string, args ...any) {
	if len(args) == 0 {
		s.log.Debugf("SQL: %s", compactSQL(query))

		return
	}

	s.log.Debugf("SQL: %s -- args: %v", compactSQL(query), args)
}

// compactSQL collapses the whitespace of multi-line statement literals so
// they log on one line.
func compactSQL(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
