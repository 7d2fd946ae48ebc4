/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entityconv

// Build metadata. Everything except Version is injected with -ldflags -X at release time.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// VersionInfo is what `entityconv --version` reports.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo snapshots the build metadata of the running binary.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
	}
}
