package buildinfo

import "fmt"

// Set at build time via -ldflags "-X cubescreen/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full identification printed by -version.
func String() string {
	return fmt.Sprintf("cubescreen %s (commit %s, built %s)", Version, Commit, Date)
}
