package version

import "github.com/fatih/color"

// Version information for the etxdir CLI.
// These variables can be overridden at build time via -ldflags.

const (
	major = "0"
	minor = "1"
	patch = "0"
	pre   = "-dev"
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the plain semantic version of the CLI, safe for machine
	// output (JSON, --version).
	Version = major + "." + minor + "." + patch + pre

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored returns the version with each semver segment colored, for
// human-facing output only.
func Colored() string {
	return versionMajorColor.Sprint(major) + "." + versionMinorColor.Sprint(minor) + "." + versionPatchColor.Sprint(patch) + pre
}
