// Package layout implements the tiling tree: split containers holding
// window leaves, geometry partitioning, and directional focus and move with
// automatic restructuring.
//
// The tree is not safe for concurrent use. A host serializes every call,
// typically from its single event loop.
package layout

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// Surface applies layout decisions to real windows.
type Surface interface {
	ApplyGeometry(ctx context.Context, id entity.WindowID, r entity.Rect) error
	Raise(ctx context.Context, id entity.WindowID) error
	SetFocus(ctx context.Context, id entity.WindowID) error
}

// Node is either a *Leaf or a *Container.
type Node interface {
	hasWindow(id entity.WindowID) bool
	resize(ctx context.Context, s Surface, r entity.Rect, gap int) error
	focusAny(ctx context.Context, s Surface) error
	appendWindows(dst []entity.WindowID) []entity.WindowID
	writeTo(b *strings.Builder)
}

// Leaf wraps a single managed window.
type Leaf struct {
	Window entity.WindowID
}

// NewLeaf wraps a window handle.
func NewLeaf(id entity.WindowID) *Leaf {
	return &Leaf{Window: id}
}

func (l *Leaf) hasWindow(id entity.WindowID) bool {
	return l.Window == id
}

func (l *Leaf) resize(ctx context.Context, s Surface, r entity.Rect, _ int) error {
	if err := s.ApplyGeometry(ctx, l.Window, r); err != nil {
		return fmt.Errorf("%w: geometry of window %d: %w", ErrSurfaceApplyFailed, l.Window, err)
	}
	return nil
}

func (l *Leaf) focusAny(ctx context.Context, s Surface) error {
	if err := s.Raise(ctx, l.Window); err != nil {
		return fmt.Errorf("%w: raise window %d: %w", ErrSurfaceApplyFailed, l.Window, err)
	}
	if err := s.SetFocus(ctx, l.Window); err != nil {
		return fmt.Errorf("%w: focus window %d: %w", ErrSurfaceApplyFailed, l.Window, err)
	}
	return nil
}

func (l *Leaf) appendWindows(dst []entity.WindowID) []entity.WindowID {
	return append(dst, l.Window)
}

func (l *Leaf) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, "%d", l.Window)
}

func (l *Leaf) String() string {
	return fmt.Sprintf("%d", l.Window)
}
