package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize the history database",
	Long:  "Run database maintenance (VACUUM and ANALYZE) to reclaim disk space and update query statistics.",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = s.Close() }()

		log.Info("Running database optimization...")

		result, err := s.Optimize()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		log.Info("Database optimization completed")
		log.Infof("  Size before: %s", formatBytes(result.SizeBefore))
		log.Infof("  Size after:  %s", formatBytes(result.SizeAfter))

		saved := result.SpaceSaved()
		if saved > 0 {
			log.Infof("  Space saved: %s", formatBytes(saved))
		} else if saved == 0 {
			log.Info("  Space saved: (no change)")
		} else {
			log.Infof("  Size increased: %s", formatBytes(-saved))
		}

		log.Infof("  Duration:    %v", result.Duration.Round(time.Millisecond))
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}
