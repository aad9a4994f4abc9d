package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kedare/histdb/internal/history"
)

var (
	recordCwd      string
	recordChecksum string
)

var recordCmd = &cobra.Command{
	Use:   "record [flags] -- COMMAND...",
	Short: "Record one command in the history database",
	Long: `Record a command against a working directory. Meant to be called by the
shell hook after every prompt; repeated (directory, command) pairs increment
a counter instead of creating new rows. The --checksum token suppresses the
same hook invocation firing twice: when it matches the previously stored
token the call is a silent no-op.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		command := strings.TrimSpace(strings.Join(args, " "))
		if command == "" {
			return
		}

		if cfg.Ignores(command) {
			log.Debugf("Command matches ignore list, not recording: %s", command)

			return
		}

		cwd := recordCwd

		if cwd == "" {
			var err error

			cwd, err = os.Getwd()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to resolve working directory: %v\n", err)
				os.Exit(1)
			}
		}

		dir, err := history.ResolveDir(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		checksum := sql.NullString{String: recordChecksum, Valid: recordChecksum != ""}

		s, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = s.Close() }()

		recorded, err := s.Record(dir, command, checksum)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		if recorded {
			log.Debugf("Recorded command in %s: %s", dir, command)
		} else {
			log.Debugf("Skipped duplicate command (checksum match): %s", command)
		}
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringVar(&recordCwd, "cwd", "", "Directory to record the command against (default: current directory)")
	recordCmd.Flags().StringVar(&recordChecksum, "checksum", "", "Opaque dedup token from the shell hook")
}
