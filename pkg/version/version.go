// Package version exposes the application version derived from build metadata.
//
// Priority: -ldflags override > VCS info from debug.BuildInfo > "dev" fallback.
//
// Usage:
//
//	version.Version    // "1.0.0" — semantic version reported by /health
//	version.GitCommit  // "a3f8c2d1" or "dev"
//	version.Full()     // "agentgateway-webui/a3f8c2d1" or "agentgateway-webui/dev"
package version

import "runtime/debug"

// AppName is the application name used in version strings and log lines.
const AppName = "agentgateway-webui"

// Version is the semantic version of the web interface, reported verbatim
// by the health endpoint.
const Version = "1.0.0"

// gitCommitOverride is set via -ldflags at build time for container builds
// where .git is unavailable. Empty string means no override.
var gitCommitOverride string

// GitCommit is the short git commit hash (8 chars) from build info.
// Set to "dev" when build info is unavailable (e.g., `go test`, non-git builds).
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		if len(gitCommitOverride) > 8 {
			return gitCommitOverride[:8]
		}
		return gitCommitOverride
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 8 {
				return s.Value[:8]
			}
			return s.Value
		}
	}
	return "dev"
}

// Full returns "agentgateway-webui/<commit>" for use in logging.
func Full() string {
	return AppName + "/" + GitCommit
}
