// Package buildinfo carries version metadata stamped in at build time.
package buildinfo

// Set via -ldflags "-X github.com/consign-dev/consign/internal/buildinfo.Version=..."
// and friends by the release build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
