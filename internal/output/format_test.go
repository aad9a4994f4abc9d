package output

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultFormat(t *testing.T) {
	t.Run("empty_env_returns_preferred", func(t *testing.T) {
		t.Setenv("HISTDB_OUTPUT", "")
		require.Equal(t, "plain", DefaultFormat("plain", SearchFormats))
	})

	t.Run("supported_env_wins", func(t *testing.T) {
		t.Setenv("HISTDB_OUTPUT", "json")
		require.Equal(t, "json", DefaultFormat("plain", SearchFormats))
	})

	t.Run("env_is_case_insensitive", func(t *testing.T) {
		t.Setenv("HISTDB_OUTPUT", "TABLE")
		require.Equal(t, "table", DefaultFormat("plain", SearchFormats))
	})

	t.Run("unsupported_env_falls_back", func(t *testing.T) {
		t.Setenv("HISTDB_OUTPUT", "xml")
		require.Equal(t, "plain", DefaultFormat("plain", SearchFormats))
	})
}

func TestDetectTerminalWidthColumnsOverride(t *testing.T) {
	t.Setenv("COLUMNS", "120")

	width, ok := detectTerminalWidth()
	require.True(t, ok)
	require.Equal(t, 120, width)
}

func TestDetectTerminalWidthIgnoresBadColumns(t *testing.T) {
	t.Setenv("COLUMNS", "not-a-number")

	// Falls through to the system probe; under a test harness without a
	// TTY that reports no width.
	width, ok := detectTerminalWidth()
	if ok {
		require.Positive(t, width)
	}
}
