package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/rootisgod/followgo/internal/config"
)

// Set with -ldflags "-X main.Version=...".
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns version information. Commit and build time fall back
// to the VCS stamp of the binary when not set at link time.
func GetVersion() string {
	commit, built := GitCommit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown" && len(s.Value) >= 7:
				commit = s.Value[:7]
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("%s %s (built on %s, commit %s, %s/%s)",
		appName, Version, built, commit, runtime.GOOS, runtime.GOARCH)
}

func describeBackend(c config.BackendConfig) string {
	switch {
	case c.URL != "":
		return c.URL
	case c.FixturesFile != "":
		return "fixtures " + c.FixturesFile
	}
	return "demo data"
}

// versionDetails are the lines under the version string in the version modal.
func versionDetails(backend, account string) []string {
	if account == "" {
		account = "none"
	} else {
		account = "@" + account
	}
	return []string{
		"Go:      " + runtime.Version(),
		"Backend: " + backend,
		"Account: " + account,
	}
}
