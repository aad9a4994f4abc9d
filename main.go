package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kedare/histdb/cmd"
	"github.com/kedare/histdb/internal/logger"
)

func main() {
	// Route all diagnostic output to stderr so stdout stays clean for
	// search results consumed by shell widgets.
	logger.InitPterm()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
