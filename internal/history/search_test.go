package history

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var localTimestamp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func TestSearchGlobalAggregatesCounts(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		mustRecord(t, s, "/home/a", "git status")
	}
	mustRecord(t, s, "/home/b", "git status")

	results, err := s.Search(SearchParams{Limit: 5, OrderBy: OrderBySummedCount})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "git status", results[0].Cmd)
	require.True(t, results[0].Count.Valid)
	require.Equal(t, int64(4), results[0].Count.Int64)
}

func TestSearchScopedReturnsRawCounts(t *testing.T) {
	s := newTestStore(t)

	seedEntry(t, s, "/home/a", "git status", 2, time.Now())
	seedEntry(t, s, "/home/b", "git status", 3, time.Now())

	results, err := s.Search(SearchParams{
		Directory: optional("/home/a"),
		Limit:     5,
		OrderBy:   OrderByCount,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, int64(2), results[0].Count.Int64)
}

func TestSearchDirectoryScoping(t *testing.T) {
	s := newTestStore(t)

	mustRecord(t, s, "/home/a", "make build")

	scoped := func(recurse bool) []SearchResult {
		results, err := s.Search(SearchParams{
			Directory: optional("/home"),
			Limit:     10,
			OrderBy:   OrderByCount,
			Recurse:   recurse,
		})
		require.NoError(t, err)

		return results
	}

	require.Empty(t, scoped(false), "exact match must not see subdirectories")
	require.Len(t, scoped(true), 1, "recursive scope must see subdirectories")
}

func TestSearchRecursionNeedsPathSeparator(t *testing.T) {
	s := newTestStore(t)

	mustRecord(t, s, "/home/a", "inside")
	mustRecord(t, s, "/home/a/deep", "nested")
	mustRecord(t, s, "/home/ab", "outside")

	results, err := s.Search(SearchParams{
		Directory: optional("/home/a"),
		Limit:     10,
		OrderBy:   OrderByCount,
		Recurse:   true,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		require.NotEqual(t, "outside", r.Cmd, "sibling with shared prefix must stay out of scope")
	}
}

func TestSearchSubstringFilter(t *testing.T) {
	s := newTestStore(t)

	mustRecord(t, s, "/home/a", "git status")
	mustRecord(t, s, "/home/a", "git push")
	mustRecord(t, s, "/home/a", "ls -la")

	results, err := s.Search(SearchParams{
		Substring: optional("git"),
		Limit:     10,
		OrderBy:   OrderBySummedCount,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		require.Contains(t, r.Cmd, "git")
	}
}

func TestSearchOrderingAndLimit(t *testing.T) {
	s := newTestStore(t)

	now := time.Now()
	seedEntry(t, s, "/home/a", "first", 7, now)
	seedEntry(t, s, "/home/a", "second", 4, now)
	seedEntry(t, s, "/home/a", "third", 9, now)
	seedEntry(t, s, "/home/a", "fourth", 1, now)

	results, err := s.Search(SearchParams{
		Directory: optional("/home/a"),
		Limit:     3,
		OrderBy:   OrderByCount,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i := 1; i < len(results); i++ {
		require.GreaterOrEqual(t, results[i-1].Count.Int64, results[i].Count.Int64)
	}

	require.Equal(t, "third", results[0].Cmd)
}

func TestSearchMostRecentOrdersByRecency(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	seedEntry(t, s, "/home/a", "older", 9, base)
	seedEntry(t, s, "/home/a", "newer", 1, base.Add(time.Hour))

	results, err := s.Search(SearchParams{
		Directory: optional("/home/a"),
		Limit:     10,
		OrderBy:   OrderByMostRecent,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "newer", results[0].Cmd)
	require.Equal(t, "older", results[1].Cmd)

	for _, r := range results {
		require.True(t, r.Timestamp.Valid)
		require.Regexp(t, localTimestamp, r.Timestamp.String)
	}
}

func TestSearchGlobalMostRecentUsesNewestGroupEntry(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// "deploy" was first used long ago in one directory but recently in
	// another; the group must surface with the newest time.
	seedEntry(t, s, "/home/a", "deploy", 1, base)
	seedEntry(t, s, "/home/b", "deploy", 2, base.Add(3*time.Hour))
	seedEntry(t, s, "/home/c", "status", 5, base.Add(time.Hour))

	results, err := s.Search(SearchParams{Limit: 10, OrderBy: OrderByMostRecent})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "deploy", results[0].Cmd)
	require.Equal(t, int64(3), results[0].Count.Int64)
	require.Equal(t, "status", results[1].Cmd)
}

func TestSearchCommandOnlyOmitsColumns(t *testing.T) {
	s := newTestStore(t)

	mustRecord(t, s, "/home/a", "git status")

	results, err := s.Search(SearchParams{
		Limit:       5,
		OrderBy:     OrderBySummedCount,
		CommandOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "git status", results[0].Cmd)
	require.False(t, results[0].Count.Valid)
	require.False(t, results[0].Timestamp.Valid)
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	results, err := s.Search(SearchParams{
		Substring: optional("nothing-recorded"),
		Limit:     5,
		OrderBy:   OrderBySummedCount,
	})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSearchScopedTimestampOmittedForFrequencyOrder(t *testing.T) {
	s := newTestStore(t)

	mustRecord(t, s, "/home/a", "git status")

	results, err := s.Search(SearchParams{
		Directory: optional("/home/a"),
		Limit:     5,
		OrderBy:   OrderByCount,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Count.Valid)
	require.False(t, results[0].Timestamp.Valid)
}
