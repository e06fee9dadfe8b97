// Package version reports build information for kbkit.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   string // Set via ldflags.
	BuildDate string // Set via ldflags.

	Revision  = readRevision(debug.ReadBuildInfo)
	GoVersion = runtime.Version()
	GoOS      = runtime.GOOS
	GoArch    = runtime.GOARCH
)

// GetVersion returns the release version, falling back to the VCS revision.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return Revision
}

// Summary returns a one-line description of the build.
func Summary() string {
	s := fmt.Sprintf("%s (%s/%s, %s)", GetVersion(), GoOS, GoArch, GoVersion)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

// readRevision returns the short VCS revision recorded in the build info,
// suffixed with "-dirty" for modified trees.
func readRevision(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return "unknown"
	}

	var (
		rev   = "unknown"
		dirty bool
	)

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}

		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
