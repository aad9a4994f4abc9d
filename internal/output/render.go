package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"

	"github.com/kedare/histdb/internal/history"
)

// SearchFormats are the renderings RenderSearch accepts.
var SearchFormats = []string{"plain", "table", "json"}

// RenderSearch writes search results to w in the requested format. An empty
// result set writes nothing in plain format and an empty container in the
// structured ones.
func RenderSearch(w io.Writer, results []history.SearchResult, format string) error {
	switch format {
	case "json":
		return renderJSON(w, results)
	case "table":
		return renderTable(w, results)
	default:
		return renderPlain(w, results)
	}
}

// searchRow is the JSON shape of one result. Absent columns are omitted
// rather than zeroed so command-only output stays minimal.
type searchRow struct {
	Cmd       string `json:"cmd"`
	Count     *int64 `json:"count,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func renderJSON(w io.Writer, results []history.SearchResult) error {
	rows := make([]searchRow, 0, len(results))

	for _, r := range results {
		row := searchRow{Cmd: r.Cmd}

		if r.Count.Valid {
			count := r.Count.Int64
			row.Count = &count
		}

		if r.Timestamp.Valid {
			row.Timestamp = r.Timestamp.String
		}

		rows = append(rows, row)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode results: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func renderTable(w io.Writer, results []history.SearchResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No results")

		return err
	}

	withCount := results[0].Count.Valid
	withTimestamp := results[0].Timestamp.Valid

	header := []string{"Command"}
	if withCount {
		header = append(header, "Count")
	}

	if withTimestamp {
		header = append(header, "Last used")
	}

	tableData := pterm.TableData{header}

	for _, r := range results {
		row := []string{r.Cmd}
		if withCount {
			row = append(row, fmt.Sprintf("%d", r.Count.Int64))
		}

		if withTimestamp {
			row = append(row, r.Timestamp.String)
		}

		tableData = append(tableData, row)
	}

	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(tableData).Render()
}

func renderPlain(w io.Writer, results []history.SearchResult) error {
	countWidth := 0

	for _, r := range results {
		if r.Count.Valid {
			if n := len(fmt.Sprintf("%d", r.Count.Int64)); n > countWidth {
				countWidth = n
			}
		}
	}

	termWidth, haveWidth := detectTerminalWidth()

	for _, r := range results {
		var b strings.Builder

		if r.Count.Valid {
			fmt.Fprintf(&b, "%*d  ", countWidth, r.Count.Int64)
		}

		if r.Timestamp.Valid {
			b.WriteString(r.Timestamp.String)
			b.WriteString("  ")
		}

		cmd := r.Cmd
		if haveWidth {
			remaining := termWidth - runewidth.StringWidth(b.String())
			if remaining > 1 {
				cmd = runewidth.Truncate(cmd, remaining, "…")
			}
		}

		b.WriteString(cmd)

		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}
