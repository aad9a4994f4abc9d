package history

import "time"

// Clean deletes every entry last used at or before now minus retentionDays
// days and reports how many rows were removed. A retention of zero clears
// everything recorded up to now. Running it twice in a row deletes nothing
// the second time.
func (s *Store) Clean(retentionDays int) (int64, error) {
	start := time.Now()
	defer func() { s.stats.recordOperation("Clean", time.Since(start)) }()

	if retentionDays < 0 {
		return 0, &ArgumentError{Name: "retentionDays", Reason: "must be zero or a positive number"}
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour).Unix()

	query := `DELETE FROM history WHERE entered_on <= ?`
	s.logSQL(query, cutoff)

	result, err := s.db.Exec(query, cutoff)
	if err != nil {
		return 0, s.classify("clean history", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, s.classify("clean history", err)
	}

	return deleted, nil
}
