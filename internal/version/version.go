// Package version reports the build of the running binary. Release builds
// stamp the variables below with -ldflags; development builds fall back to
// the VCS settings recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	BuildTime time.Time `json:"build_time"`
	GoVersion string    `json:"go_version"`
	Platform  string    `json:"platform"`
	Dirty     bool      `json:"dirty,omitempty"`
}

// Set at build time:
//
//	go build -ldflags "-X github.com/supafox/supafox/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Get collects the build information.
func Get() *BuildInfo {
	info := &BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: parseBuildTime(BuildTime),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if info.GitCommit == "" || info.GitCommit == "unknown" {
		if rev := settings["vcs.revision"]; rev != "" {
			info.GitCommit = rev
		}
	}
	if info.BuildTime.IsZero() {
		info.BuildTime = parseBuildTime(settings["vcs.time"])
	}
	info.Dirty = settings["vcs.modified"] == "true"

	if info.Version == "" || info.Version == "dev" {
		switch {
		case bi.Main.Version != "" && bi.Main.Version != "(devel)":
			info.Version = bi.Main.Version
		case len(info.GitCommit) >= 7 && info.GitCommit != "unknown":
			info.Version = "dev-" + info.GitCommit[:7]
		default:
			info.Version = "dev"
		}
	}
	return info
}

// IsRelease reports whether the binary carries a release version.
func (b *BuildInfo) IsRelease() bool {
	return b.Version != "dev" && !strings.HasPrefix(b.Version, "dev-")
}

// Short returns "v1.2.0 (abc1234)" or just the version when no commit is
// known.
func (b *BuildInfo) Short() string {
	s := b.Version
	if b.IsRelease() && len(b.GitCommit) >= 7 && b.GitCommit != "unknown" {
		s += " (" + b.GitCommit[:7] + ")"
	}
	if b.Dirty {
		s += " (dirty)"
	}
	return s
}

// Detailed returns one "Key: value" line per known field.
func (b *BuildInfo) Detailed() string {
	parts := []string{fmt.Sprintf("Version: %s", b.Version)}
	if b.GitCommit != "unknown" && b.GitCommit != "" {
		parts = append(parts, fmt.Sprintf("Commit: %s", b.GitCommit))
	}
	if !b.BuildTime.IsZero() {
		parts = append(parts, fmt.Sprintf("Built: %s", b.BuildTime.Format(time.RFC3339)))
	}
	parts = append(parts,
		fmt.Sprintf("Go: %s", b.GoVersion),
		fmt.Sprintf("Platform: %s", b.Platform))
	return strings.Join(parts, "\n")
}

func parseBuildTime(s string) time.Time {
	if s == "" || s == "unknown" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
