package port

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// SurfaceController applies layout decisions to on-screen windows.
// Calls are synchronous and are not retried; an error means the display
// server rejected the request.
type SurfaceController interface {
	// ApplyGeometry moves and resizes a window.
	ApplyGeometry(ctx context.Context, id entity.WindowID, r entity.Rect) error

	// Raise brings a window to the top of the stacking order.
	Raise(ctx context.Context, id entity.WindowID) error

	// SetFocus transfers input focus to a window.
	SetFocus(ctx context.Context, id entity.WindowID) error
}
