package config

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dumbwm/internal/logging"
)

// reloadDebounce coalesces the write+rename pairs most editors emit on save.
const reloadDebounce = 100 * time.Millisecond

var errNotInitialized = errors.New("configuration not initialized")

// Watch reloads the file on every change and hands the new Config to the
// callbacks registered with OnConfigChange. A file that fails validation is
// logged and the previous Config stays in effect. Saves that do not change
// any value are ignored so the running layout is not redrawn for nothing.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}

	log := logging.FromContext(logging.WithComponent(ctx, "config"))
	var pending *time.Timer

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")
		if ctx.Err() != nil {
			return
		}

		m.mu.Lock()
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(reloadDebounce, func() {
			m.mu.Lock()
			previous := m.config
			if err := m.reload(); err != nil {
				m.mu.Unlock()
				log.Warn().Err(err).Msg("config rejected, keeping previous settings")
				return
			}
			if reflect.DeepEqual(previous, m.config) {
				m.mu.Unlock()
				log.Debug().Msg("config saved without changes")
				return
			}
			m.notifyCallbacksLocked()
		})
		m.mu.Unlock()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked releases m.mu before running the callbacks, so a
// callback may call Get.
func (m *Manager) notifyCallbacksLocked() {
	cfg := m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}
}

// OnConfigChange registers fn to receive every accepted reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// reload must be called with m.mu held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg
	return nil
}

// Watch starts watching the global manager's file.
func Watch(ctx context.Context) error {
	if globalManager == nil {
		return errNotInitialized
	}
	return globalManager.Watch(ctx)
}

// OnConfigChange registers fn on the global manager. It is a no-op before Init.
func OnConfigChange(fn func(*Config)) {
	if globalManager != nil {
		globalManager.OnConfigChange(fn)
	}
}
