package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the history database",
	Long:  "Create the history database schema. Safe to run more than once; an already-initialized database is left untouched.",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = s.Close() }()

		if err := s.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		log.Infof("History database initialized: %s", s.Path())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
