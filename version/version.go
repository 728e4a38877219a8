package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "crankpad"

// the vcs revision the binary was built from. if the source had uncommitted
// changes at build time the string is suffixed with "+dirty". if there is no
// vcs information at all, as when running with "go run .", the string says so
var revision string

// Revision returns the vcs revision of the build.
func Revision() string {
	return revision
}

// Title returns a string suitable for a window title.
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, revision)
}

func init() {
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}
}
