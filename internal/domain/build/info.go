// Package build describes the binary that is running.
package build

import "fmt"

// Name is advertised to clients and used for man pages and log lines.
const Name = "dumbwm"

const shortCommitLen = 7

// Info is filled from ldflags in main.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// ShortCommit trims a full hash to the usual seven characters.
func (i Info) ShortCommit() string {
	if len(i.Commit) > shortCommitLen {
		return i.Commit[:shortCommitLen]
	}
	return i.Commit
}

// String renders "dumbwm v1.2.0 (abc1234)", or just the name and version
// when no commit was injected.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if c := i.ShortCommit(); c != "" && c != "unknown" {
		return fmt.Sprintf("%s %s (%s)", Name, version, c)
	}
	return Name + " " + version
}

func Contributors() []string {
	return []string{"bnema"}
}

func RepoURL() string {
	return "https://github.com/bnema/" + Name
}
