package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kedare/histdb/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata for this binary",
	Long:  "Display the version, commit, build date, and target platform embedded in the binary.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(version.Get().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
