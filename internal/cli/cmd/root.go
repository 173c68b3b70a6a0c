// Package cmd provides Cobra CLI commands for dumbwm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/cli"
	"github.com/bnema/dumbwm/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dumbwm",
		Short: "A dumb tiling window manager for X11",
		Long: `dumbwm - a dumb tiling window manager for X11.

Windows are tiled in a tree of vertical and horizontal splits. Every new
window is appended to the root split; moving a window past the edge of its
split lifts it one level up the tree, and past the edge of the screen wraps
the whole tree into a new split.

Running 'dumbwm' with no subcommand starts the window manager on $DISPLAY.
The subcommands inspect and edit the configuration, list key bindings, and
replay layout scripts without a display.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runWM,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
