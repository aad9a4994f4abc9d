package history

import "time"

// Schema statements. Each one is individually idempotent so re-running Init
// against a live database is a no-op.
const (
	createHistoryTable = `
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cwd TEXT NOT NULL,
			cmd TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 1,
			entered_on INTEGER NOT NULL
		)`

	createHistoryPairIndex = `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_history_cwd_cmd ON history(cwd, cmd)`

	createHistoryCountIndex = `
		CREATE INDEX IF NOT EXISTS idx_history_count ON history(count)`

	createHistoryEnteredOnIndex = `
		CREATE INDEX IF NOT EXISTS idx_history_entered_on ON history(entered_on)`

	createChecksumTable = `
		CREATE TABLE IF NOT EXISTS checksum (
			sum TEXT
		)`

	seedChecksumRow = `
		INSERT INTO checksum (sum)
		SELECT '' WHERE NOT EXISTS (SELECT 1 FROM checksum)`
)

// Init creates the history table, its indexes, and the single-row checksum
// marker. cwd is conventionally at most 256 characters and cmd at most 4096;
// neither bound is enforced by the schema. entered_on holds unix seconds and
// is refreshed on every re-insert of the same (cwd, cmd) pair.
func (s *Store) Init() error {
	start := time.Now()
	defer func() { s.stats.recordOperation("Init", time.Since(start)) }()

	statements := []string{
		createHistoryTable,
		createHistoryPairIndex,
		createHistoryCountIndex,
		createHistoryEnteredOnIndex,
		createChecksumTable,
		seedChecksumRow,
	}

	for _, stmt := range statements {
		s.logSQL(stmt)

		if _, err := s.db.Exec(stmt); err != nil {
			return s.classify("initialize history store", err)
		}
	}

	return nil
}
