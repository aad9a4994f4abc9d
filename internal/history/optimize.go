package history

import (
	"os"
	"time"
)

// OptimizeResult reports the effect of a maintenance pass.
type OptimizeResult struct {
	SizeBefore int64
	SizeAfter  int64
	Duration   time.Duration
}

// SpaceSaved returns how many bytes the pass reclaimed. Negative when the
// file grew.
func (r *OptimizeResult) SpaceSaved() int64 {
	return r.SizeBefore - r.SizeAfter
}

// Optimize runs VACUUM and ANALYZE to reclaim disk space and refresh the
// query planner statistics.
func (s *Store) Optimize() (*OptimizeResult, error) {
	start := time.Now()
	defer func() { s.stats.recordOperation("Optimize", time.Since(start)) }()

	result := &OptimizeResult{}

	if fi, err := os.Stat(s.path); err == nil {
		result.SizeBefore = fi.Size()
	}

	for _, stmt := range []string{"VACUUM", "ANALYZE"} {
		s.logSQL(stmt)

		if _, err := s.db.Exec(stmt); err != nil {
			return nil, s.classify("optimize history database", err)
		}
	}

	if fi, err := os.Stat(s.path); err == nil {
		result.SizeAfter = fi.Size()
	}

	result.Duration = time.Since(start)

	return result, nil
}
