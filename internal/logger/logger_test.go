package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"trace":   LevelTrace,
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"INFO":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
	}

	for input, want := range cases {
		got, err := ParseLevel(input)
		require.NoError(t, err, "level %q", input)
		require.Equal(t, want, got, "level %q", input)
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}

func TestNewKeepsRequestedLevel(t *testing.T) {
	l := New(LevelWarn)
	require.Equal(t, LevelWarn, l.level)
}
