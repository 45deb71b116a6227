// Where: warmup/internal/version/version.go
// What: Version information retrieval.
// Why: Surface build-time VCS state to the CLI without a stamped ldflag.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns the version string derived from embedded build info.
// It reports "dev" when build info is unavailable or carries no revision,
// and appends "(dirty)" when the tree was modified at build time.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
