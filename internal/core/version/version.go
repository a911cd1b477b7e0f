// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'reposcout/internal/core/version.version=v1.0.0'
	// -X 'reposcout/internal/core/version.commit=abcd' -X 'reposcout/internal/core/version.date=2026-01-01'"
	return BuildInfo{
		Service: "reposcout-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "1.0.0"
	commit  = "none"
	date    = "unknown"
)
