package shell

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseHistoryPlainBash(t *testing.T) {
	input := "ls -la\n\n# comment\ngit status\n"

	entries, err := ParseHistory(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "ls -la", entries[0].Cmd)
	require.True(t, entries[0].EnteredOn.IsZero())
	require.Equal(t, "git status", entries[1].Cmd)
}

func TestParseHistoryZshExtended(t *testing.T) {
	input := ": 1700000000:0;git status\n: 1700000060:5;make test\n"

	entries, err := ParseHistory(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "git status", entries[0].Cmd)
	require.Equal(t, time.Unix(1700000000, 0), entries[0].EnteredOn)
	require.Equal(t, "make test", entries[1].Cmd)
	require.Equal(t, time.Unix(1700000060, 0), entries[1].EnteredOn)
}

func TestParseHistoryMixedFormats(t *testing.T) {
	input := ": 1700000000:0;git status\nls -la\n"

	entries, err := ParseHistory(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.False(t, entries[0].EnteredOn.IsZero())
	require.True(t, entries[1].EnteredOn.IsZero())
}

func TestParseHistoryMultilineContinuation(t *testing.T) {
	input := ": 1700000000:0;echo one \\\ntwo\nls\n"

	entries, err := ParseHistory(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "echo one \ntwo", entries[0].Cmd)
	require.Equal(t, "ls", entries[1].Cmd)
}

func TestParseHistoryEmptyInput(t *testing.T) {
	entries, err := ParseHistory(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestParseHistoryZshLineWithEmptyCommand(t *testing.T) {
	entries, err := ParseHistory(strings.NewReader(": 1700000000:0;\n"))
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestParseHistoryFileMissing(t *testing.T) {
	_, err := ParseHistoryFile("/nonexistent/history")
	require.Error(t, err)
}
