// Package logger provides leveled terminal logging for the histdb CLI
package logger

import (
	"os"

	"github.com/pterm/pterm"
)

// InitPterm configures pterm to write all diagnostic output to stderr,
// leaving stdout clean for search results consumed by shell widgets.
func InitPterm() {
	// Configure all pterm prefix printers to write to stderr
	// This includes Info, Success, Warning, Error, Debug printers
	pterm.Info.Writer = os.Stderr
	pterm.Success.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Debug.Writer = os.Stderr

	// Tables stay on stdout: they are structured output, not diagnostics.
}
