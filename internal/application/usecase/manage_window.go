package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/layout"
	"github.com/bnema/dumbwm/internal/logging"
)

// ErrUnknownWindow is returned when an operation names a window that is not
// part of the layout.
var ErrUnknownWindow = errors.New("window not managed")

// WindowSettings carries the layout options read from config.
type WindowSettings struct {
	Gaps         int
	OuterGaps    int
	DefaultSplit layout.SplitKind
}

// ManageWindowsUseCase owns the layout tree and the screen area it tiles.
// It is not safe for concurrent use; the event loop is its only caller.
type ManageWindowsUseCase struct {
	tree      *layout.Tree
	surface   port.SurfaceController
	screen    entity.Rect
	outerGaps int
}

// NewManageWindowsUseCase creates a use case that tiles screen.
func NewManageWindowsUseCase(surface port.SurfaceController, screen entity.Rect, settings WindowSettings) *ManageWindowsUseCase {
	return &ManageWindowsUseCase{
		tree: layout.NewTree(surface,
			layout.WithGap(settings.Gaps),
			layout.WithSplit(settings.DefaultSplit),
		),
		surface:   surface,
		screen:    screen,
		outerGaps: settings.OuterGaps,
	}
}

// Tree exposes the layout for inspection.
func (uc *ManageWindowsUseCase) Tree() *layout.Tree { return uc.tree }

// ContentRect is the screen area minus the outer gaps.
func (uc *ManageWindowsUseCase) ContentRect() entity.Rect {
	return uc.screen.Inset(uc.outerGaps)
}

// Manages reports whether id is part of the layout.
func (uc *ManageWindowsUseCase) Manages(id entity.WindowID) bool {
	return uc.tree.HasWindow(id)
}

// AddWindow appends a newly mapped window to the root, lays the tree out and
// focuses the window. It returns false when the window was already managed.
func (uc *ManageWindowsUseCase) AddWindow(ctx context.Context, id entity.WindowID) (bool, error) {
	log := logging.FromContext(ctx)

	if !uc.tree.AddLeaf(id) {
		log.Debug().Uint32("window", uint32(id)).Msg("window already managed")
		return false, nil
	}
	log.Debug().
		Uint32("window", uint32(id)).
		Str("tree", uc.tree.String()).
		Msg("window added")

	if err := uc.Resize(ctx); err != nil {
		return true, err
	}
	if err := uc.focus(ctx, id); err != nil {
		return true, err
	}
	return true, nil
}

// RemoveWindow drops a window from the layout and reports whether the tree
// is now empty. When windows remain, the tree is laid out again and one of
// them receives focus. Unknown windows yield ErrUnknownWindow.
func (uc *ManageWindowsUseCase) RemoveWindow(ctx context.Context, id entity.WindowID) (bool, error) {
	log := logging.FromContext(ctx)

	if !uc.tree.HasWindow(id) {
		return false, fmt.Errorf("remove %d: %w", id, ErrUnknownWindow)
	}
	empty := uc.tree.RemoveWindow(id)
	log.Debug().
		Uint32("window", uint32(id)).
		Str("tree", uc.tree.String()).
		Bool("empty", empty).
		Msg("window removed")

	if empty {
		return true, nil
	}
	if err := uc.Resize(ctx); err != nil {
		return false, err
	}
	if err := uc.tree.FocusAny(ctx); err != nil {
		return false, fmt.Errorf("focus after remove: %w", err)
	}
	return false, nil
}

// MoveWindow moves id one step in dir and lays the tree out again.
func (uc *ManageWindowsUseCase) MoveWindow(ctx context.Context, dir entity.Direction, id entity.WindowID) error {
	log := logging.FromContext(ctx)

	if !uc.tree.HasWindow(id) {
		return fmt.Errorf("move %s: %w", dir, ErrUnknownWindow)
	}
	if err := uc.tree.MoveWindow(dir, id); err != nil {
		return fmt.Errorf("move %s: %w", dir, err)
	}
	log.Debug().
		Uint32("window", uint32(id)).
		Str("direction", dir.String()).
		Str("tree", uc.tree.String()).
		Msg("window moved")

	return uc.Resize(ctx)
}

// FocusWindow moves input focus from id to its neighbour in dir.
func (uc *ManageWindowsUseCase) FocusWindow(ctx context.Context, dir entity.Direction, id entity.WindowID) error {
	if !uc.tree.HasWindow(id) {
		return fmt.Errorf("focus %s: %w", dir, ErrUnknownWindow)
	}
	if err := uc.tree.FocusWindow(ctx, dir, id); err != nil {
		return fmt.Errorf("focus %s: %w", dir, err)
	}
	return nil
}

// FocusAny focuses some managed window, if there is one.
func (uc *ManageWindowsUseCase) FocusAny(ctx context.Context) error {
	return uc.tree.FocusAny(ctx)
}

// ToggleRootOrientation swaps the root split and lays the tree out again.
func (uc *ManageWindowsUseCase) ToggleRootOrientation(ctx context.Context) error {
	if err := uc.tree.ToggleRootOrientation(ctx); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().
		Str("split", uc.tree.Root().Split().Kind().String()).
		Msg("root orientation toggled")
	return nil
}

// Resize lays the tree out inside the content rectangle.
func (uc *ManageWindowsUseCase) Resize(ctx context.Context) error {
	if uc.tree.Empty() {
		return nil
	}
	return uc.tree.Resize(ctx, uc.ContentRect())
}

// SetScreen updates the screen rectangle and lays the tree out again.
func (uc *ManageWindowsUseCase) SetScreen(ctx context.Context, screen entity.Rect) error {
	uc.screen = screen
	return uc.Resize(ctx)
}

// ApplySettings changes gaps at runtime. The root split is only used for a
// fresh tree and is left alone here.
func (uc *ManageWindowsUseCase) ApplySettings(ctx context.Context, settings WindowSettings) error {
	if settings.Gaps == uc.tree.Gap() && settings.OuterGaps == uc.outerGaps {
		return nil
	}
	uc.tree.SetGap(settings.Gaps)
	uc.outerGaps = settings.OuterGaps

	logging.FromContext(ctx).Info().
		Int("gaps", settings.Gaps).
		Int("outer_gaps", settings.OuterGaps).
		Msg("layout settings applied")

	return uc.Resize(ctx)
}

func (uc *ManageWindowsUseCase) focus(ctx context.Context, id entity.WindowID) error {
	if err := uc.surface.Raise(ctx, id); err != nil {
		return fmt.Errorf("%w: raise %d: %w", layout.ErrSurfaceApplyFailed, id, err)
	}
	if err := uc.surface.SetFocus(ctx, id); err != nil {
		return fmt.Errorf("%w: focus %d: %w", layout.ErrSurfaceApplyFailed, id, err)
	}
	return nil
}
