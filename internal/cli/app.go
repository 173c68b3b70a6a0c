// Package cli provides the dumbwm command line, rendered with lipgloss and
// Bubble Tea.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/domain/build"
	"github.com/bnema/dumbwm/internal/infrastructure/config"
	"github.com/bnema/dumbwm/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// LoadErr is set when the config file exists but could not be used.
	// Config then holds the defaults.
	LoadErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the config and prepares a stderr logger.
func NewApp() (*App, error) {
	loadErr := config.Init()
	mgr := config.GetManager()
	if mgr == nil {
		return nil, fmt.Errorf("config manager: %w", loadErr)
	}
	cfg := config.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("config not loaded, using defaults")
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		LoadErr: loadErr,
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// EnableFileLog adds a rotating log file to the logger when the config
// asks for one. It returns the log file path, or "" when disabled.
func (a *App) EnableFileLog() (string, error) {
	lc := a.Config.Logging
	if !lc.EnableFileLog {
		return "", nil
	}

	rotator, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        lc.LogDir,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxAgeDays: lc.MaxAge,
		Compress:   true,
	})
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(lc.Level),
		Format:     lc.Format,
		TimeFormat: time.RFC3339,
		File:       rotator,
	})
	a.setLogger(logger)
	a.logCleanup = func() { _ = rotator.Close() }
	return rotator.Path(), nil
}

func (a *App) setLogger(logger zerolog.Logger) {
	a.ctx = logging.WithContext(context.Background(), logger)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
