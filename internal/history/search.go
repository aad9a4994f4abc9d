package history

import "time"

// Search compiles and runs one search, shaping rows into SearchResults. Zero
// rows is a valid empty result, not an error.
func (s *Store) Search(p SearchParams) ([]SearchResult, error) {
	start := time.Now()
	defer func() { s.stats.recordOperation("Search", time.Since(start)) }()

	query, args, err := BuildSearchQuery(p)
	if err != nil {
		return nil, err
	}

	s.logSQL(query, args...)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, s.classify("search history", err)
	}
	defer func() { _ = rows.Close() }()

	withCount := !p.CommandOnly
	withTimestamp := !p.CommandOnly && p.OrderBy == OrderByMostRecent

	results := make([]SearchResult, 0)

	for rows.Next() {
		var r SearchResult

		dest := []any{&r.Cmd}
		if withCount {
			dest = append(dest, &r.Count)
		}

		if withTimestamp {
			dest = append(dest, &r.Timestamp)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, s.classify("search history", err)
		}

		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, s.classify("search history", err)
	}

	return results, nil
}
