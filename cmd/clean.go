package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cleanDays int

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete history entries past the retention window",
	Long: `Delete every entry last used at or before now minus the retention days.
With --days 0 everything recorded up to now is removed.`,
	Run: func(cmd *cobra.Command, args []string) {
		days := cleanDays
		if !cmd.Flags().Changed("days") {
			days = cfg.RetentionDays
		}

		s, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = s.Close() }()

		deleted, err := s.Clean(days)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		log.Infof("Removed %d entr%s older than %d day(s)", deleted, plural(deleted, "y", "ies"), days)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().IntVar(&cleanDays, "days", 0, "Retention in days (default from config)")
}

func plural(n int64, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}

	return pluralForm
}
