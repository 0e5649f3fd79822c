// Package version exposes build version metadata.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version, injected at build time.
	Version = "0.0.0-dev"

	// Revision is the VCS revision, read from build info when available.
	Revision = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// GetVersionString returns the full version string.
func GetVersionString() string {
	return fmt.Sprintf("%s+%s", Version, Revision)
}
