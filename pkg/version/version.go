// Package version carries build-time version information, injected via
// ldflags by the release build.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/nsxbet/sqlint/pkg/version.Version=v1.2.3 ..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the build and runtime environment.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// Get returns the current version info.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Environment returns the info as ordered label/value pairs for display.
func (i Info) Environment() [][2]string {
	return [][2]string{
		{"sqlint", i.Version},
		{"commit", i.Commit},
		{"built", i.Date},
		{"go", i.GoVersion},
		{"platform", i.Platform},
	}
}

// String returns the bare version.
func (i Info) String() string {
	return i.Version
}
