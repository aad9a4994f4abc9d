package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kedare/histdb/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell (bash|zsh)",
	Short: "Print the shell integration snippet",
	Long: `Print the hook snippet that records every entered command.

Add to your rc file:
  eval "$(histdb shell zsh)"    # ~/.zshrc
  eval "$(histdb shell bash)"   # ~/.bashrc`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh"},
	Run: func(cmd *cobra.Command, args []string) {
		snippet, err := shell.Hook(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		fmt.Print(snippet)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
