package version

import "github.com/fatih/color"

// Build information for the citrine CLI, overridable at build time via
// -ldflags "-X citrine/internal/version.Version=...".

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var bannerColor = color.New(color.FgYellow, color.Bold)

// Banner renders the version string for terminal display. Plain Version
// stays uncolored so -ldflags overrides and --version output remain
// machine-readable.
func Banner() string {
	return bannerColor.Sprint("citrine " + Version)
}
