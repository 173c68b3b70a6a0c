package x11

import (
	"context"
	"fmt"

	"github.com/jezek/xgb/xproto"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

// ApplyGeometry moves and resizes a window and removes its border.
func (d *Display) ApplyGeometry(_ context.Context, id entity.WindowID, r entity.Rect) error {
	mask, values := geometryValues(r)
	if err := xproto.ConfigureWindowChecked(d.conn, xproto.Window(id), mask, values).Check(); err != nil {
		return fmt.Errorf("configure window %d to %s: %w", id, r, err)
	}
	return nil
}

// Raise puts a window on top of its siblings.
func (d *Display) Raise(_ context.Context, id entity.WindowID) error {
	err := xproto.ConfigureWindowChecked(d.conn, xproto.Window(id),
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
	if err != nil {
		return fmt.Errorf("raise window %d: %w", id, err)
	}
	return nil
}

// SetFocus gives a window the input focus. Focus falls back to the pointer
// root if the window goes away.
func (d *Display) SetFocus(_ context.Context, id entity.WindowID) error {
	err := xproto.SetInputFocusChecked(d.conn, xproto.InputFocusPointerRoot,
		xproto.Window(id), xproto.TimeCurrentTime).Check()
	if err != nil {
		return fmt.Errorf("focus window %d: %w", id, err)
	}
	return nil
}

// MapWindow makes a window visible.
func (d *Display) MapWindow(_ context.Context, id entity.WindowID) error {
	if err := xproto.MapWindowChecked(d.conn, xproto.Window(id)).Check(); err != nil {
		return fmt.Errorf("map window %d: %w", id, err)
	}
	return nil
}

// Configure grants a client's configure request as asked.
func (d *Display) Configure(_ context.Context, req port.ConfigureRequest) error {
	mask, values := requestValues(req)
	if mask == 0 {
		return nil
	}
	if err := xproto.ConfigureWindowChecked(d.conn, xproto.Window(req.Window), mask, values).Check(); err != nil {
		return fmt.Errorf("configure request of window %d: %w", req.Window, err)
	}
	return nil
}

func geometryValues(r entity.Rect) (uint16, []uint32) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight |
		xproto.ConfigWindowBorderWidth)
	// X rejects zero sizes.
	w, h := max(r.W, 1), max(r.H, 1)
	return mask, []uint32{
		uint32(int32(r.X)),
		uint32(int32(r.Y)),
		uint32(w),
		uint32(h),
		0,
	}
}

// requestValues rebuilds the value list in the order the protocol expects
// for the bits set in req.Mask.
func requestValues(req port.ConfigureRequest) (uint16, []uint32) {
	var values []uint32
	mask := req.Mask & (xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight |
		xproto.ConfigWindowBorderWidth | xproto.ConfigWindowSibling |
		xproto.ConfigWindowStackMode)

	if mask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(int32(req.Rect.X)))
	}
	if mask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(int32(req.Rect.Y)))
	}
	if mask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(req.Rect.W))
	}
	if mask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(req.Rect.H))
	}
	if mask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(req.BorderWidth))
	}
	if mask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(req.Sibling))
	}
	if mask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(req.StackMode))
	}
	return mask, values
}

// CloseWindow sends WM_DELETE_WINDOW when the client advertises it and
// kills the client connection otherwise.
func (d *Display) CloseWindow(_ context.Context, id entity.WindowID) error {
	win := xproto.Window(id)

	supported, err := d.supportsProtocol(win, d.atoms.wmDeleteWindow)
	if err != nil {
		return err
	}
	if !supported {
		if err := xproto.KillClientChecked(d.conn, uint32(win)).Check(); err != nil {
			return fmt.Errorf("kill client of window %d: %w", id, err)
		}
		return nil
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   d.atoms.wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(d.atoms.wmDeleteWindow),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}
	if err := xproto.SendEventChecked(d.conn, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check(); err != nil {
		return fmt.Errorf("send WM_DELETE_WINDOW to %d: %w", id, err)
	}
	return nil
}

func (d *Display) supportsProtocol(win xproto.Window, protocol xproto.Atom) (bool, error) {
	reply, err := xproto.GetProperty(d.conn, false, win, d.atoms.wmProtocols,
		xproto.AtomAtom, 0, 64).Reply()
	if err != nil {
		return false, fmt.Errorf("read WM_PROTOCOLS of %d: %w", win, err)
	}
	if reply.Format != 32 {
		return false, nil
	}
	return containsAtom(atomList(reply.Value), protocol), nil
}
