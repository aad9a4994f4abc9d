package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show history database information",
	Long:  "Display the database location, size, and aggregate counts of the recorded history.",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = s.Close() }()

		info, err := s.Info()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		fmt.Println("History Database")
		fmt.Println("================")
		fmt.Printf("Path:               %s\n", info.Path)
		fmt.Printf("Size:               %s\n", formatBytes(info.SizeBytes))
		fmt.Println()

		fmt.Println("Entries")
		fmt.Println("-------")
		fmt.Printf("Entries:            %d\n", info.Entries)
		fmt.Printf("Distinct commands:  %d\n", info.DistinctCommands)
		fmt.Printf("Directories:        %d\n", info.DistinctDirs)
		fmt.Printf("Commands recorded:  %d\n", info.TotalRecorded)

		if !info.OldestEntry.IsZero() {
			fmt.Println()
			fmt.Printf("Oldest entry:       %s\n", info.OldestEntry.Format(time.RFC3339))
			fmt.Printf("Newest entry:       %s\n", info.NewestEntry.Format(time.RFC3339))
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// formatBytes formats bytes in a human-readable way.
func formatBytes(b int64) string {
	const unit = 1024

	if b < unit {
		return fmt.Sprintf("%d B", b)
	}

	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
