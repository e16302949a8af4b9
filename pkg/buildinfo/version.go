// Package buildinfo reports which bellows build produced a pattern.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/sylvainf/bellows/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/sylvainf/bellows/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/sylvainf/bellows/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/bellows
//
// Binaries installed with "go install" carry no ldflags; for those the
// values are taken from the module and VCS stamps the toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the short git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// shortCommit is the length commits are cut to, matching git's short form.
const shortCommit = 12

func init() {
	if Version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		FromBuildInfo(info)
	}
}

// FromBuildInfo fills the variables still at their defaults from the
// module version and vcs.* settings of info. Values set via ldflags win.
func FromBuildInfo(info *debug.BuildInfo) {
	if info == nil {
		return
	}
	if v := info.Main.Version; Version == "dev" && v != "" && v != "(devel)" {
		Version = v
	}

	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "none" && s.Value != "" {
				Commit = s.Value
				if len(Commit) > shortCommit {
					Commit = Commit[:shortCommit]
				}
			}
		case "vcs.time":
			if Date == "unknown" && s.Value != "" {
				Date = s.Value
			}
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if modified && Commit != "none" {
		Commit += "-dirty"
	}
}

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("bellows %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}
