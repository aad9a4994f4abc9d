package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kedare/histdb/internal/history"
	"github.com/kedare/histdb/internal/output"
)

var (
	searchDir         string
	searchLimit       int
	searchNoRecurse   bool
	searchRecent      bool
	searchCommandOnly bool
	searchFormat      string
)

var searchCmd = &cobra.Command{
	Use:   "search [substring]",
	Short: "Search recorded history",
	Long: `Search the recorded history, most frequent first (or most recent with
--recent). Without --dir the search is global: counts for the same command
text are summed across all directories. With --dir only that directory is
searched, including its subdirectories unless --no-recurse is given.

Examples:
  histdb search                      # top commands everywhere
  histdb search git                  # commands containing "git"
  histdb search --dir . --no-recurse # this exact directory only
  histdb search --recent --limit 10  # ten most recently used`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		substring := ""
		if len(args) == 1 {
			substring = args[0]
		}

		limit := searchLimit
		if !cmd.Flags().Changed("limit") {
			limit = cfg.DefaultLimit
		}

		params, err := buildSearchParams(searchDir, substring, limit, searchNoRecurse, searchRecent, searchCommandOnly)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		s, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = s.Close() }()

		results, err := s.Search(params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		if err := output.RenderSearch(os.Stdout, results, searchFormat); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render results: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchDir, "dir", "", "Restrict the search to this directory")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results (default from config)")
	searchCmd.Flags().BoolVar(&searchNoRecurse, "no-recurse", false, "Match the directory exactly, excluding subdirectories")
	searchCmd.Flags().BoolVar(&searchRecent, "recent", false, "Order by most recent use instead of frequency")
	searchCmd.Flags().BoolVar(&searchCommandOnly, "command-only", false, "Print commands without counts or timestamps")
	searchCmd.Flags().StringVar(&searchFormat, "format", output.DefaultFormat("plain", output.SearchFormats), "Output format: plain, table, or json")
}

// buildSearchParams maps the search flags onto store parameters. Frequency
// ordering becomes summed counts for a global search and raw counts when a
// directory scope is given; a supplied directory must resolve on disk.
func buildSearchParams(dir, substring string, limit int, noRecurse, recent, commandOnly bool) (history.SearchParams, error) {
	params := history.SearchParams{
		Limit:       limit,
		Recurse:     !noRecurse,
		CommandOnly: commandOnly,
	}

	if dir != "" {
		resolved, err := history.ResolveDir(dir)
		if err != nil {
			return params, err
		}

		params.Directory = sql.NullString{String: resolved, Valid: true}
	}

	if substring != "" {
		params.Substring = sql.NullString{String: substring, Valid: true}
	}

	switch {
	case recent:
		params.OrderBy = history.OrderByMostRecent
	case params.Directory.Valid:
		params.OrderBy = history.OrderByCount
	default:
		params.OrderBy = history.OrderBySummedCount
	}

	return params, nil
}
