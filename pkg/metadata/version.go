package metadata

import "runtime/debug"

const (
	// Name of the application.
	Name = "gitswitch"
	// Description of the application.
	Description = "Switch a git working tree to a branch, with streamed progress"
)

// Version holds application version information.
var Version = runtimeVersion() //nolint:gochecknoglobals

func runtimeVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		// Test binaries carry build info with an empty main version.
		return "v0.0.0"
	}
	return bi.Main.Version
}
