package shell

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestHookSnippets(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, shell := range []string{"bash", "zsh"} {
		t.Run(shell, func(t *testing.T) {
			snippet, err := Hook(shell)
			require.NoError(t, err)

			g.Assert(t, shell, []byte(snippet))
		})
	}
}

func TestHookUnsupportedShell(t *testing.T) {
	_, err := Hook("fish")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported shell")
}
