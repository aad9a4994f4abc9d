// Package version exposes build metadata embedded at link time.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// The following variables can be overridden at build time using -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info contains metadata about the compiled binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	Platform  string
	GoVersion string
}

// Get returns build metadata, normalizing defaults where necessary.
func Get() Info {
	return Info{
		Version:   fallback(Version, "dev"),
		Commit:    fallback(Commit, "unknown"),
		BuildDate: fallback(BuildDate, "unknown"),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
}

// String renders the block printed by the version command.
func (i Info) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Version:    %s\n", i.Version)
	fmt.Fprintf(&b, "Commit:     %s\n", i.Commit)
	fmt.Fprintf(&b, "Built:      %s\n", i.BuildDate)
	fmt.Fprintf(&b, "Platform:   %s\n", i.Platform)
	fmt.Fprintf(&b, "Go Version: %s\n", i.GoVersion)

	return b.String()
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	return value
}
