// Package wm runs the window manager event loop.
package wm

import (
	"context"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

// Display is the display server connection the event loop drives.
type Display interface {
	port.SurfaceController
	port.WindowCloser

	// NextEvent blocks until the next relevant event. It fails once the
	// connection is closed.
	NextEvent(ctx context.Context) (port.DisplayEvent, error)

	// MapWindow makes a window visible.
	MapWindow(ctx context.Context, id entity.WindowID) error

	// Configure grants a configure request unchanged.
	Configure(ctx context.Context, req port.ConfigureRequest) error

	// GrabKeys and UngrabAll manage key grabs on a window, or on the root
	// window when id is 0.
	GrabKeys(ctx context.Context, id entity.WindowID, chords []entity.Chord) error
	UngrabAll(ctx context.Context, id entity.WindowID) error

	// ScreenRect is the area available for tiling.
	ScreenRect() entity.Rect

	// Close releases the connection and unblocks NextEvent.
	Close() error
}
