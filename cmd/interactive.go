package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kedare/histdb/internal/tui"
)

var (
	interactiveDir   string
	interactiveLimit int
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Pick a command from history interactively",
	Long: `Open a full-screen picker over the recorded history, most recent first.
Typing filters the list (space-separated terms must all match, '|' separates
alternatives, '-' negates). Enter prints the selected command to stdout so a
shell widget can place it on the command line; Escape exits with nothing.`,
	Run: func(cmd *cobra.Command, args []string) {
		params, err := buildSearchParams(interactiveDir, "", interactiveLimit, false, true, false)
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

		if len(results) == 0 {
			log.Info("No history recorded yet")

			return
		}

		rows := make([]tui.Row, 0, len(results))
		for _, r := range results {
			rows = append(rows, tui.Row{
				Cmd:   r.Cmd,
				Count: r.Count.Int64,
				When:  r.Timestamp.String,
			})
		}

		choice, err := tui.NewPicker(rows).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		if choice != "" {
			fmt.Println(choice)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().StringVar(&interactiveDir, "dir", "", "Restrict the picker to this directory")
	interactiveCmd.Flags().IntVar(&interactiveLimit, "limit", 500, "Maximum number of entries loaded into the picker")
}
