// Package version carries build identity injected at link time.
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns a single-line description suitable for -version output.
func String() string {
	return fmt.Sprintf("motionlab %s (%s, built %s)", Version, GitSHA, BuildTime)
}
