// Package buildinfo carries the firmware identity stamped in by the linker:
//
//	-ldflags "-X alarmclock/internal/buildinfo.Version=v1.2.0 -X alarmclock/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact identifier for the window title and fault screen.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the boot log form: "alarmclock v1.2.0 (commit abc123, built 2024-03-04)".
func String() string {
	return fmt.Sprintf("alarmclock %s (commit %s, built %s)", Version, Commit, Date)
}
