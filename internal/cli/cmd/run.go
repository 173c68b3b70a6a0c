package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/app/wm"
	"github.com/bnema/dumbwm/internal/infrastructure/config"
	"github.com/bnema/dumbwm/internal/infrastructure/launcher"
	"github.com/bnema/dumbwm/internal/infrastructure/x11"
	"github.com/bnema/dumbwm/internal/logging"
)

var displayName string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the window manager",
	Long: `Connect to the X server and manage its windows until quit.

The config file is watched while running: layout gaps and key bindings are
applied live. SIGINT and SIGTERM stop the window manager cleanly.`,
	RunE: runWM,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.PersistentFlags().StringVarP(&displayName, "display", "d", "", "X display to manage (default $DISPLAY)")
}

func runWM(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.LoadErr != nil {
		return fmt.Errorf("load config: %w", app.LoadErr)
	}

	logPath, err := app.EnableFileLog()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	log.Info().
		Str("version", app.BuildInfo.String()).
		Str("config", app.Manager.GetConfigFile()).
		Str("log_file", logPath).
		Msg("starting dumbwm")
	logging.LogCoreDumpLimits(ctx)

	display, err := x11.Connect(ctx, displayName)
	if err != nil {
		return err
	}
	if err := display.AcquireExclusiveControl(ctx); err != nil {
		_ = display.Close()
		return err
	}

	manager, err := wm.New(display, launcher.New(), app.Config)
	if err != nil {
		_ = display.Close()
		return err
	}

	watchConfig(ctx, manager)

	if err := manager.Run(ctx); err != nil {
		log.Error().Err(err).Msg("window manager stopped")
		return err
	}
	log.Info().Msg("dumbwm exited")
	return nil
}

// watchConfig feeds config file edits to the running manager.
func watchConfig(ctx context.Context, manager *wm.Manager) {
	config.OnConfigChange(func(cfg *config.Config) {
		logging.FromContext(ctx).Info().Msg("config changed, reloading")
		manager.Reload(cfg)
	})
	if err := config.Watch(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watch disabled")
	}
}
