package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Set at build time with -ldflags "-X .../pkg/version.Version=..."
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns version information, preferring moduleVersion (from the
// module build info) when no version was injected at build time
func Get(moduleVersion string) Info {
	v := Version
	if v == "dev" && moduleVersion != "" && moduleVersion != "(devel)" {
		v = strings.TrimPrefix(moduleVersion, "v")
	}
	return Info{
		Version:   v,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("tig version %s\nGit commit: %s\nBuild date: %s\nGo version: %s\nPlatform: %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
