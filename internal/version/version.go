// Package version exposes build-time version metadata.
package version

import "fmt"

// Version is set via ldflags in release builds:
// go build -ldflags "-X git.home.luguber.info/inful/datebuilder/internal/version.Version=v1.0.0".
var Version = "unknown"

// Additional build metadata, also ldflags-settable.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the full version line shown by --version.
func String() string {
	if BuildTime == "unknown" && GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
