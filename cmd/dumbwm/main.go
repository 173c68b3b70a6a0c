// Command dumbwm is a dumb tiling window manager for X11.
package main

import (
	"runtime"

	"github.com/bnema/dumbwm/internal/cli/cmd"
	"github.com/bnema/dumbwm/internal/domain/build"
	"github.com/bnema/dumbwm/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	logging.EnableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
