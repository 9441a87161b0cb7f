// Package version provides build-time version information for paint-mcp.
// Values are injected at build time using ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the server.
	// Injected via: -ldflags "-X github.com/ironsheep/paint-tools-mcp/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// BuildTime is the build date in RFC3339 format.
	BuildTime = "unknown"
)

// ServerName is reported to MCP clients during initialize.
const ServerName = "paint-tools-mcp"

// Info holds all version information for the binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version line.
func String() string {
	info := GetInfo()
	if Commit != "unknown" && BuildTime != "unknown" {
		commit := info.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		return fmt.Sprintf("paint-mcp version %s (commit: %s, built: %s, %s, %s)",
			info.Version, commit, info.BuildTime, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("paint-mcp version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
}
