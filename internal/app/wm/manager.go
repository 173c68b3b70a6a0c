package wm

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/layout"
	"github.com/bnema/dumbwm/internal/infrastructure/config"
	"github.com/bnema/dumbwm/internal/logging"
)

const eventBuffer = 64

// Manager owns the layout and applies display events to it one at a time.
// Only the dispatcher goroutine touches the layout.
type Manager struct {
	display Display
	windows *usecase.ManageWindowsUseCase
	actions *usecase.ExecuteActionUseCase

	bindings     map[entity.Chord]entity.Action
	windowChords []entity.Chord
	rootChords   []entity.Chord

	reloads chan *config.Config
}

// New creates a Manager tiling the display's screen with the settings and
// bindings of cfg.
func New(display Display, launcher port.Launcher, cfg *config.Config) (*Manager, error) {
	settings, err := windowSettings(cfg)
	if err != nil {
		return nil, err
	}

	windows := usecase.NewManageWindowsUseCase(display, display.ScreenRect(), settings)
	m := &Manager{
		display: display,
		windows: windows,
		actions: usecase.NewExecuteActionUseCase(windows, launcher, display),
		reloads: make(chan *config.Config, 1),
	}
	if err := m.setBindings(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// Windows exposes the window use case, mostly for inspection.
func (m *Manager) Windows() *usecase.ManageWindowsUseCase { return m.windows }

// Reload queues a new configuration for the dispatcher. Only the latest
// pending configuration is kept.
func (m *Manager) Reload(cfg *config.Config) {
	for {
		select {
		case m.reloads <- cfg:
			return
		default:
		}
		select {
		case <-m.reloads:
		default:
		}
	}
}

// Run grabs the global bindings and processes events until ctx is done, the
// quit action runs, or the display connection fails. Quitting and
// cancellation return nil.
func (m *Manager) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "wm")
	log := logging.FromContext(ctx)

	if err := m.display.GrabKeys(ctx, 0, m.rootChords); err != nil {
		return fmt.Errorf("grab global bindings: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan port.DisplayEvent, eventBuffer)

	g.Go(func() error {
		defer logging.LogPanic(gctx)
		return m.readEvents(gctx, events)
	})
	g.Go(func() error {
		defer logging.LogPanic(gctx)
		return m.dispatch(gctx, events)
	})
	g.Go(func() error {
		<-gctx.Done()
		return m.display.Close()
	})

	err := g.Wait()
	switch {
	case errors.Is(err, usecase.ErrQuitRequested):
		log.Info().Msg("quit requested")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info().Msg("event loop cancelled")
		return nil
	}
	return err
}

func (m *Manager) readEvents(ctx context.Context, events chan<- port.DisplayEvent) error {
	defer close(events)

	for {
		ev, err := m.display.NextEvent(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("display: %w", err)
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *Manager) dispatch(ctx context.Context, events <-chan port.DisplayEvent) error {
	log := logging.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cfg := <-m.reloads:
			if err := m.applyConfig(ctx, cfg); err != nil {
				log.Warn().Err(err).Msg("failed to apply configuration")
			}
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := m.handle(ctx, ev); err != nil {
				if errors.Is(err, usecase.ErrQuitRequested) {
					return err
				}
				logHandleError(ctx, ev, err)
			}
		}
	}
}

func logHandleError(ctx context.Context, ev port.DisplayEvent, err error) {
	log := logging.FromContext(ctx)
	event := fmt.Sprintf("%T", ev)
	if errors.Is(err, usecase.ErrUnknownWindow) {
		log.Debug().Err(err).Str("event", event).Msg("event for unmanaged window")
		return
	}
	log.Warn().Err(err).Str("event", event).Msg("failed to handle event")
}

func (m *Manager) handle(ctx context.Context, ev port.DisplayEvent) error {
	switch e := ev.(type) {
	case port.MapRequest:
		return m.handleMapRequest(ctx, e)
	case port.WindowGone:
		_, err := m.windows.RemoveWindow(logging.WithWindow(ctx, e.Window), e.Window)
		return err
	case port.ConfigureRequest:
		if m.windows.Manages(e.Window) {
			// Managed windows keep the layout geometry.
			return m.windows.Resize(ctx)
		}
		return m.display.Configure(ctx, e)
	case port.KeyPress:
		return m.handleKeyPress(ctx, e)
	case port.ScreenChange:
		logging.FromContext(ctx).Info().Str("screen", e.Rect.String()).Msg("screen changed")
		return m.windows.SetScreen(ctx, e.Rect)
	}
	return nil
}

func (m *Manager) handleMapRequest(ctx context.Context, e port.MapRequest) error {
	ctx = logging.WithWindow(ctx, e.Window)

	if err := m.display.MapWindow(ctx, e.Window); err != nil {
		return err
	}
	if m.windows.Manages(e.Window) {
		return nil
	}
	if err := m.display.GrabKeys(ctx, e.Window, m.windowChords); err != nil {
		return err
	}
	_, err := m.windows.AddWindow(ctx, e.Window)
	return err
}

func (m *Manager) handleKeyPress(ctx context.Context, e port.KeyPress) error {
	log := logging.FromContext(ctx)

	action, ok := m.bindings[e.Chord]
	if !ok {
		log.Debug().Str("chord", e.Chord.String()).Msg("unbound chord")
		return nil
	}
	if action.TargetsWindow() && e.Window == 0 {
		log.Debug().Str("chord", e.Chord.String()).Msg("no target window for action")
		return nil
	}
	return m.actions.Execute(logging.WithWindow(ctx, e.Window), action, e.Window)
}

func (m *Manager) applyConfig(ctx context.Context, cfg *config.Config) error {
	settings, err := windowSettings(cfg)
	if err != nil {
		return err
	}
	if err := m.windows.ApplySettings(ctx, settings); err != nil {
		return err
	}

	if err := m.setBindings(cfg); err != nil {
		return err
	}

	var errs []error
	if err := m.display.UngrabAll(ctx, 0); err != nil {
		errs = append(errs, err)
	}
	if err := m.display.GrabKeys(ctx, 0, m.rootChords); err != nil {
		errs = append(errs, err)
	}
	for _, id := range m.windows.Tree().Windows() {
		if err := m.display.UngrabAll(ctx, id); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := m.display.GrabKeys(ctx, id, m.windowChords); err != nil {
			errs = append(errs, err)
		}
	}

	logging.FromContext(ctx).Info().Int("bindings", len(m.bindings)).Msg("configuration applied")
	return errors.Join(errs...)
}

func (m *Manager) setBindings(cfg *config.Config) error {
	resolved, err := cfg.ResolveBindings()
	if err != nil {
		return fmt.Errorf("resolve bindings: %w", err)
	}

	bindings := make(map[entity.Chord]entity.Action, len(resolved))
	var windowChords, rootChords []entity.Chord
	for _, b := range resolved {
		bindings[b.Chord] = b.Action
		if b.Action.TargetsWindow() {
			windowChords = append(windowChords, b.Chord)
		} else {
			rootChords = append(rootChords, b.Chord)
		}
	}

	m.bindings = bindings
	m.windowChords = windowChords
	m.rootChords = rootChords
	return nil
}

func windowSettings(cfg *config.Config) (usecase.WindowSettings, error) {
	split, err := layout.ParseSplitKind(cfg.Layout.DefaultSplit)
	if err != nil {
		return usecase.WindowSettings{}, fmt.Errorf("layout.default_split: %w", err)
	}
	return usecase.WindowSettings{
		Gaps:         cfg.Layout.Gaps,
		OuterGaps:    cfg.Layout.OuterGaps,
		DefaultSplit: split,
	}, nil
}
