package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// ErrQuitRequested is returned by Execute for the quit action. The event
// loop treats it as a clean shutdown.
var ErrQuitRequested = errors.New("quit requested")

// ExecuteActionUseCase runs the action bound to a key press.
type ExecuteActionUseCase struct {
	windows  *ManageWindowsUseCase
	launcher port.Launcher
	closer   port.WindowCloser
}

// NewExecuteActionUseCase creates a new ExecuteActionUseCase.
func NewExecuteActionUseCase(windows *ManageWindowsUseCase, launcher port.Launcher, closer port.WindowCloser) *ExecuteActionUseCase {
	return &ExecuteActionUseCase{
		windows:  windows,
		launcher: launcher,
		closer:   closer,
	}
}

// Execute applies action. target is the window that received the key press
// and is ignored by actions that do not target a window.
func (uc *ExecuteActionUseCase) Execute(ctx context.Context, action entity.Action, target entity.WindowID) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("action", action.String()).
		Uint32("target", uint32(target)).
		Msg("executing action")

	switch action.Kind {
	case entity.ActionFocus:
		return uc.windows.FocusWindow(ctx, action.Direction, target)
	case entity.ActionMove:
		return uc.windows.MoveWindow(ctx, action.Direction, target)
	case entity.ActionToggleSplit:
		return uc.windows.ToggleRootOrientation(ctx)
	case entity.ActionKill:
		if !uc.windows.Manages(target) {
			return fmt.Errorf("kill: %w", ErrUnknownWindow)
		}
		if err := uc.closer.CloseWindow(ctx, target); err != nil {
			return fmt.Errorf("kill window %d: %w", target, err)
		}
		return nil
	case entity.ActionExec:
		if err := uc.launcher.Launch(ctx, action.Command, action.Args...); err != nil {
			return fmt.Errorf("launch %s: %w", action.Command, err)
		}
		return nil
	case entity.ActionQuit:
		return ErrQuitRequested
	default:
		return fmt.Errorf("unsupported action %s", action.Kind)
	}
}
