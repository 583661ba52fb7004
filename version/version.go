// Package version reports build information for the condax binary.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Name is the program name recorded in exports
const Name = "condax"

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// devVersion stands in for untagged builds wherever a semver is required
const devVersion = "0.0.0-dev"

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// IsDev reports whether this is an untagged build
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev"
}

// Semver parses Version. Untagged builds report 0.0.0-dev.
func (i Info) Semver() (*semver.Version, error) {
	if i.IsDev() {
		return semver.MustParse(devVersion), nil
	}
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", i.Version, err)
	}
	return v, nil
}

// SemverString is Semver rendered as a string, falling back to the raw
// Version when it does not parse
func (i Info) SemverString() string {
	v, err := i.Semver()
	if err != nil {
		return i.Version
	}
	return v.String()
}

// String returns a human-readable version string
func (i Info) String() string {
	if !i.IsDev() {
		return fmt.Sprintf("%s %s (commit %s, built %s)", Name, i.Version, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("%s dev (commit %s, built %s)", Name, i.CommitHash, i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
