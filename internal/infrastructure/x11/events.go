package x11

import (
	"context"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// NextEvent blocks until the server sends an event the window manager cares
// about. X errors from unchecked requests are logged and skipped. It returns
// ErrConnectionClosed after Close.
func (d *Display) NextEvent(ctx context.Context) (port.DisplayEvent, error) {
	log := logging.FromContext(ctx)

	for {
		ev, xerr := d.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return nil, ErrConnectionClosed
		}
		if xerr != nil {
			log.Debug().Str("error", xerr.Error()).Msg("x protocol error")
			continue
		}

		if translated := d.translate(ctx, ev); translated != nil {
			return translated, nil
		}
	}
}

// translate maps an X event to a display event, or nil when the event is
// of no interest.
func (d *Display) translate(ctx context.Context, ev xgb.Event) port.DisplayEvent {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		return port.MapRequest{Window: entity.WindowID(e.Window)}

	case xproto.UnmapNotifyEvent:
		return port.WindowGone{Window: entity.WindowID(e.Window)}

	case xproto.DestroyNotifyEvent:
		d.mu.Lock()
		d.grabs.forget(e.Window)
		d.mu.Unlock()
		return port.WindowGone{Window: entity.WindowID(e.Window), Destroyed: true}

	case xproto.ConfigureRequestEvent:
		return configureRequest(e)

	case xproto.ConfigureNotifyEvent:
		if e.Window != d.root {
			return nil
		}
		return port.ScreenChange{Rect: entity.NewRect(0, 0, int(e.Width), int(e.Height))}

	case xproto.MappingNotifyEvent:
		// Existing grabs keep their keycodes; later grabs use the new table.
		if e.Request == xproto.MappingKeyboard {
			if err := d.RefreshKeymap(); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("keymap refresh failed, keeping previous keymap")
			}
		}
		return nil

	case xproto.KeyPressEvent:
		d.mu.RLock()
		chord, win, ok := d.grabs.lookup(e.Event, d.root, e.Detail, e.State)
		d.mu.RUnlock()
		if !ok {
			return nil
		}
		if win == d.root {
			win = 0
		}
		return port.KeyPress{Window: entity.WindowID(win), Chord: chord}
	}
	return nil
}

func configureRequest(e xproto.ConfigureRequestEvent) port.ConfigureRequest {
	return port.ConfigureRequest{
		Window:      entity.WindowID(e.Window),
		Sibling:     entity.WindowID(e.Sibling),
		Rect:        entity.NewRect(int(e.X), int(e.Y), int(e.Width), int(e.Height)),
		BorderWidth: int(e.BorderWidth),
		StackMode:   e.StackMode,
		Mask:        e.ValueMask,
	}
}
