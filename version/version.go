// Package version holds the build-time identity of the sketchsolve binary, overridden via
// ldflags for a release build (internal/assertx's no-op Require is selected separately, by the
// release build tag).
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the version to report from --version, falling back to "dev" for unstamped
// local builds.
func String() string {
	if Version == "dev" {
		return "dev"
	}
	return Version + " (" + GitCommit + ", " + BuildDate + ")"
}
