package shell

import (
	"database/sql"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kedare/histdb/internal/history"
)

// ImportResult summarizes one bulk import.
type ImportResult struct {
	Files   int
	Entries int
}

// ImportFiles parses the given history files concurrently, then replays
// every entry into the store sequentially, attributing them all to dir.
// Entries go through the normal upsert path with no checksum, so repeated
// commands accumulate counts; entries without a recorded epoch get the
// import time.
func ImportFiles(store *history.Store, files []string, dir string) (*ImportResult, error) {
	parsed := make([][]Entry, len(files))

	var g errgroup.Group

	for i, path := range files {
		g.Go(func() error {
			entries, err := ParseHistoryFile(path)
			if err != nil {
				return err
			}

			parsed[i] = entries

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	result := &ImportResult{Files: len(files)}

	for _, entries := range parsed {
		for _, e := range entries {
			when := e.EnteredOn
			if when.IsZero() {
				when = now
			}

			if _, err := store.RecordAt(dir, e.Cmd, sql.NullString{}, when); err != nil {
				return nil, err
			}

			result.Entries++
		}
	}

	return result, nil
}
