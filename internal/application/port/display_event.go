package port

import "github.com/bnema/dumbwm/internal/domain/entity"

// DisplayEvent is something the display server reported. The concrete
// types below are the only implementations.
type DisplayEvent interface {
	displayEvent()
}

// MapRequest asks the window manager to show a new top-level window.
type MapRequest struct {
	Window entity.WindowID
}

// WindowGone reports that a window was unmapped or destroyed.
type WindowGone struct {
	Window    entity.WindowID
	Destroyed bool
}

// ConfigureRequest carries a client's wish to change its own geometry.
// Mask and StackMode are passed back untouched when the request is honoured.
type ConfigureRequest struct {
	Window      entity.WindowID
	Sibling     entity.WindowID
	Rect        entity.Rect
	BorderWidth int
	StackMode   uint8
	Mask        uint16
}

// KeyPress reports a grabbed chord. Window is the window that held the
// grab, zero for global bindings.
type KeyPress struct {
	Window entity.WindowID
	Chord  entity.Chord
}

// ScreenChange reports a new screen size.
type ScreenChange struct {
	Rect entity.Rect
}

func (MapRequest) displayEvent()       {}
func (WindowGone) displayEvent()       {}
func (ConfigureRequest) displayEvent() {}
func (KeyPress) displayEvent()         {}
func (ScreenChange) displayEvent()     {}
