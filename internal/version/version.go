package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/listbind/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/listbind/internal/version.Commit=abc123"
//
// Otherwise they come from the VCS stamp in the build info, falling back to
// "dev-<timestamp>" and "unknown".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromSettings(info.Settings)
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromSettings fills unset values from the vcs.* build settings
func fromSettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if Commit == "" {
		Commit = shortRevision(vcs["vcs.revision"], vcs["vcs.modified"] == "true")
	}

	// build info carries no tags; date the dev version by commit time
	if Version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// shortRevision abbreviates a git hash to 7 characters, marking dirty trees
func shortRevision(revision string, dirty bool) string {
	if revision == "" {
		return ""
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	return revision
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// String returns the version line printed by the CLI
func String(program string) string {
	return fmt.Sprintf("%s %s", program, Full())
}
