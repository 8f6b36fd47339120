package version

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Version is the current semantic version of strsim
const Version = "0.1.0"

// Set during build time with -ldflags "-X .../internal/version.GitCommit=..."
var (
	BuildDate = "development"
	GitCommit = "unknown"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
	ID      string
}

// String formats the build for `strsim --version`
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, build: %s)", b.Version, b.Commit, b.Date, b.ID)
}

var (
	current     BuildInfo
	currentOnce sync.Once
)

// Get returns the build information, computing the fingerprint once
func Get() BuildInfo {
	currentOnce.Do(func() {
		current = BuildInfo{
			Version: Version,
			Commit:  GitCommit,
			Date:    BuildDate,
			ID:      fingerprint(),
		}
	})
	return current
}

// fingerprint hashes the Go version, main module and VCS settings. Binaries
// without build info fall back to version-commit.
func fingerprint() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version + "-" + GitCommit
	}

	d := xxhash.New()
	d.WriteString(info.GoVersion)
	d.WriteString(info.Main.Path)
	d.WriteString(info.Main.Version)

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.modified", "vcs.time":
			d.WriteString(s.Key)
			d.WriteString(s.Value)
		}
	}

	return fmt.Sprintf("%016x", d.Sum64())
}
