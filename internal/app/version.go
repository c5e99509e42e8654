package app

import (
	"runtime/debug"
	"sync"
)

// Version, Commit and BuildTime are set via ldflags at build time, e.g.
// -ldflags "-X github.com/heartmarshall/community-backend/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

var buildVersion = sync.OnceValue(func() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	return formatVersion(Version, commit, built)
})

// BuildVersion returns the version string reported in startup logs and by
// the health endpoint. Commit and build time fall back to the VCS stamp the
// Go toolchain embeds when ldflags did not set them.
func BuildVersion() string {
	return buildVersion()
}

func formatVersion(version, commit, built string) string {
	if len(commit) > 12 {
		commit = commit[:12]
	}
	out := version
	if commit != "" {
		out += "+" + commit
	}
	if built != "" {
		out += " (" + built + ")"
	}
	return out
}
