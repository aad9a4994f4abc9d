package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kedare/histdb/internal/history"
	"github.com/kedare/histdb/internal/output"
	"github.com/kedare/histdb/internal/shell"
)

var importDir string

var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Import existing shell history files",
	Long: `Bulk-load existing history files into the database. Both plain bash
history and the zsh extended format are understood; zsh entries keep their
recorded timestamps. All imported entries are attributed to --dir, the home
directory by default, since the files do not record where commands ran.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := importDir

		if dir == "" {
			var err error

			dir, err = os.UserHomeDir()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to resolve home directory: %v\n", err)
				os.Exit(1)
			}
		}

		resolved, err := history.ResolveDir(dir)
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

		sp := output.NewSpinner(fmt.Sprintf("Importing %d file(s)", len(args)))
		sp.Start()

		result, err := shell.ImportFiles(s, args, resolved)
		if err != nil {
			sp.Fail("Import failed")
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		sp.Success(fmt.Sprintf("Imported %d entries from %d file(s) into %s", result.Entries, result.Files, resolved))
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDir, "dir", "", "Directory to attribute imported entries to (default: home directory)")
}
