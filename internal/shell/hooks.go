// Package shell provides the shell-side integration: the hook snippets
// users eval in their rc files, and parsing of existing bash/zsh history
// files for bulk import.
package shell

import (
	"embed"
	"fmt"
)

//go:embed hooks/histdb.bash hooks/histdb.zsh
var hookFS embed.FS

// Hook returns the integration snippet for the named shell. The snippet
// records every entered command through `histdb record`, passing a
// checksum token that suppresses the same prompt hook firing twice.
func Hook(shell string) (string, error) {
	switch shell {
	case "bash", "zsh":
		data, err := hookFS.ReadFile("hooks/histdb." + shell)
		if err != nil {
			return "", fmt.Errorf("cannot load %s hook: %w", shell, err)
		}

		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell)
	}
}
