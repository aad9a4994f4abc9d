// Package output renders history search results and progress feedback for
// the terminal.
package output

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultFormat returns the preferred output format unless HISTDB_OUTPUT is set to a supported value.
func DefaultFormat(preferred string, allowed []string) string {
	env := strings.TrimSpace(os.Getenv("HISTDB_OUTPUT"))
	if env == "" {
		return preferred
	}

	env = strings.ToLower(env)
	for _, option := range allowed {
		if env == option {
			return env
		}
	}

	return preferred
}

// detectTerminalWidth resolves the usable terminal width, honoring a
// COLUMNS override before asking the system.
func detectTerminalWidth() (int, bool) {
	if raw, ok := os.LookupEnv("COLUMNS"); ok {
		if width, err := strconv.Atoi(raw); err == nil && width > 0 {
			return width, true
		}
	}

	if width, ok := systemTerminalWidth(); ok {
		return width, true
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width, true
	}

	return 0, false
}
