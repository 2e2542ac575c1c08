// Package version reports build information about the ndoc binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// GoOS is the operating system target.
	GoOS = runtime.GOOS
	// GoArch is the architecture target.
	GoArch = runtime.GOARCH
)

// String returns a one-line description of the build, such as
// "v1.2.0 (rev abc123, go1.25.0 linux/amd64)". An unset [Version] reads
// "devel".
func String() string {
	v := Version
	if v == "" {
		v = "devel"
	}

	details := []string{"rev " + Revision}
	if Branch != "" {
		details = append(details, "branch "+Branch)
	}

	if BuildUser != "" || BuildDate != "" {
		details = append(details, strings.TrimSpace("built "+BuildUser+" "+BuildDate))
	}

	details = append(details, fmt.Sprintf("%s %s/%s", GoVersion, GoOS, GoArch))

	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
