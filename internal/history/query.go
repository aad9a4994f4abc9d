package history

import (
	"database/sql"
	"strings"
)

// OrderBy selects the search ordering column.
type OrderBy int

const (
	// OrderByCount orders by the per-directory use count. Valid only for
	// directory-scoped searches, where the raw count column is selected.
	OrderByCount OrderBy = iota
	// OrderBySummedCount orders by the use count summed across directories.
	// Valid only for global searches, where counts are aggregated per
	// command text.
	OrderBySummedCount
	// OrderByMostRecent orders by the last time the command was entered.
	OrderByMostRecent
)

func (o OrderBy) String() string {
	switch o {
	case OrderByCount:
		return "count"
	case OrderBySummedCount:
		return "summed-count"
	case OrderByMostRecent:
		return "most-recent"
	default:
		return "unknown"
	}
}

// SearchParams captures one search. Directory and Substring distinguish
// absent (Valid false) from empty: an absent Directory selects the global
// search across all directories.
type SearchParams struct {
	Directory   sql.NullString
	Substring   sql.NullString
	Limit       int
	OrderBy     OrderBy
	Recurse     bool
	CommandOnly bool
}

// SearchResult is one returned row. Count is valid unless the search was
// command-only; Timestamp is valid only for most-recent ordering without
// command-only, rendered in local time.
type SearchResult struct {
	Cmd       string
	Count     sql.NullInt64
	Timestamp sql.NullString
}

// BuildSearchQuery compiles search parameters into a SELECT statement and
// its ordered bound parameters. It is a pure function with no store access,
// and every user-supplied value becomes a placeholder, never query text.
//
// Global searches aggregate counts per command text (GROUP BY cmd with
// SUM(count)); directory-scoped searches return raw rows, which are already
// unique per (cwd, cmd). A recursing scope matches the directory itself or
// any path nested under it with a separator, so /home/ab is never in scope
// /home/a. For most-recent ordering the timestamp of a grouped row is the
// most recent entered_on among its rows, and the same expression orders the
// results.
func BuildSearchQuery(p SearchParams) (string, []any, error) {
	if p.Limit <= 0 {
		return "", nil, &ArgumentError{Name: "limit", Reason: "must be a positive number"}
	}

	global := !p.Directory.Valid

	if global && p.OrderBy == OrderByCount {
		return "", nil, &ArgumentError{Name: "orderBy", Reason: "per-directory count ordering requires a directory"}
	}

	if !global && p.OrderBy == OrderBySummedCount {
		return "", nil, &ArgumentError{Name: "orderBy", Reason: "summed count ordering requires a global search"}
	}

	countColumn := "count"
	timeColumn := "entered_on"

	if global {
		countColumn = "SUM(count)"
		timeColumn = "MAX(entered_on)"
	}

	var b strings.Builder

	var args []any

	b.WriteString("SELECT cmd")

	if !p.CommandOnly {
		b.WriteString(", ")
		b.WriteString(countColumn)

		if p.OrderBy == OrderByMostRecent {
			b.WriteString(", datetime(")
			b.WriteString(timeColumn)
			b.WriteString(", 'unixepoch', 'localtime')")
		}
	}

	b.WriteString(" FROM history")

	where := false
	addPredicate := func(predicate string) {
		if where {
			b.WriteString(" AND ")
		} else {
			b.WriteString(" WHERE ")
			where = true
		}

		b.WriteString(predicate)
	}

	if p.Directory.Valid {
		if p.Recurse {
			addPredicate("(cwd = ? OR cwd LIKE ?)")
			args = append(args, p.Directory.String, p.Directory.String+"/%")
		} else {
			addPredicate("cwd = ?")
			args = append(args, p.Directory.String)
		}
	}

	if p.Substring.Valid {
		addPredicate("cmd LIKE ?")
		args = append(args, "%"+p.Substring.String+"%")
	}

	if global {
		b.WriteString(" GROUP BY cmd")
	}

	orderColumn := countColumn
	if p.OrderBy == OrderByMostRecent {
		orderColumn = timeColumn
	}

	b.WriteString(" ORDER BY ")
	b.WriteString(orderColumn)
	b.WriteString(" DESC LIMIT ?")
	args = append(args, p.Limit)

	return b.String(), args, nil
}
