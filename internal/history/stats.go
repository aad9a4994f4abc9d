package history

import (
	"os"
	"sync"
	"time"
)

// Stats accumulates in-process operation timings for one invocation.
// Nothing is persisted.
type Stats struct {
	mu         sync.Mutex
	operations map[string]OperationStats
}

// OperationStats aggregates the calls of one operation.
type OperationStats struct {
	Count int64
	Total time.Duration
}

func newStats() *Stats {
	return &Stats{operations: make(map[string]OperationStats)}
}

// recordOperation adds one timed call. Invoked from defers in the store's
// operations.
func (s *Stats) recordOperation(name string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op := s.operations[name]
	op.Count++
	op.Total += d
	s.operations[name] = op
}

// Snapshot returns a copy of the accumulated timings.
func (s *Stats) Snapshot() map[string]OperationStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]OperationStats, len(s.operations))
	for name, op := range s.operations {
		snapshot[name] = op
	}

	return snapshot
}

// Info describes the stored history for the info command.
type Info struct {
	Path             string
	SizeBytes        int64
	Entries          int64
	DistinctCommands int64
	DistinctDirs     int64
	TotalRecorded    int64
	OldestEntry      time.Time
	NewestEntry      time.Time
}

// Info gathers read-only aggregates about the stored history. OldestEntry
// and NewestEntry are zero when the store is empty.
func (s *Store) Info() (*Info, error) {
	start := time.Now()
	defer func() { s.stats.recordOperation("Info", time.Since(start)) }()

	info := &Info{Path: s.path}

	if fi, err := os.Stat(s.path); err == nil {
		info.SizeBytes = fi.Size()
	}

	query := `
		SELECT COUNT(*), COUNT(DISTINCT cmd), COUNT(DISTINCT cwd),
			COALESCE(SUM(count), 0), COALESCE(MIN(entered_on), 0), COALESCE(MAX(entered_on), 0)
		FROM history`
	s.logSQL(query)

	var oldest, newest int64

	err := s.db.QueryRow(query).Scan(
		&info.Entries,
		&info.DistinctCommands,
		&info.DistinctDirs,
		&info.TotalRecorded,
		&oldest,
		&newest,
	)
	if err != nil {
		return nil, s.classify("read history info", err)
	}

	if oldest > 0 {
		info.OldestEntry = time.Unix(oldest, 0)
	}

	if newest > 0 {
		info.NewestEntry = time.Unix(newest, 0)
	}

	return info, nil
}
