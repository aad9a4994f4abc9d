// Package cmd provides the command-line interface for the histdb tool
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kedare/histdb/internal/config"
	"github.com/kedare/histdb/internal/history"
	"github.com/kedare/histdb/internal/logger"
)

var (
	logLevel string
	dbFlag   string

	// Built once in PersistentPreRun, used by every subcommand.
	log *logger.Logger
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "histdb",
	Short: "Per-directory shell history with frequency and recency search",
	Long: `histdb records every shell command keyed by the directory it ran in,
and searches them back by frequency or recency, globally or scoped to a
directory tree. Install the shell hook with 'histdb shell zsh' (or bash)
and initialize the database with 'histdb init'.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s': %v\n", logLevel, err)
			os.Exit(1)
		}

		log = logger.New(level)
		log.Debugf("Log level set to: %s", logLevel)

		path, err := config.Path()
		if err == nil {
			cfg, err = config.Load(path)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set the logging level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the history database (default: $XDG_DATA_HOME/histdb/history.db)")
}

// openStore resolves the database location (flag over config over default)
// and opens it. Callers must Close the store on every exit path.
func openStore() (*history.Store, error) {
	path := dbFlag
	if path == "" {
		path = cfg.Database
	}

	if path == "" {
		var err error

		path, err = history.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	return history.Open(path, log)
}
