package yamlbridge

import (
	"fmt"
	"runtime"
)

// Name is the library name reported by the C ABI and the CLI.
const Name = "yaml_bridge"

// Authors is the authorship line embedded in VersionString.
const Authors = "erraggy"

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"

	// commit is set via ldflags during build by GoReleaser
	commit = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'.
func Commit() string {
	return commit
}

// GoVersion returns the Go runtime version used to build the binary.
func GoVersion() string {
	return runtime.Version()
}

// VersionString returns the identification line exposed through
// yaml_bridge_version: library name, version, and authorship.
func VersionString() string {
	return fmt.Sprintf("%s %s (%s)", Name, version, Authors)
}

// BuildInfo returns a multi-line summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nGo Version: %s", Version(), Commit(), GoVersion())
}
