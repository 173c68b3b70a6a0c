// Package x11 connects the window manager to an X server through xgb.
package x11

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

var (
	// ErrAnotherManagerActive means some other client already owns
	// substructure redirection on the root window.
	ErrAnotherManagerActive = errors.New("another window manager is already running")

	// ErrConnectionClosed is returned by NextEvent once the X connection is gone.
	ErrConnectionClosed = errors.New("x connection closed")
)

// Display is a connection to the X server acting as window manager.
type Display struct {
	conn   *xgb.Conn
	setup  *xproto.SetupInfo
	screen *xproto.ScreenInfo
	root   xproto.Window
	atoms  atoms

	mu     sync.RWMutex
	keymap *Keymap
	grabs  grabTable

	fetchKeymap func() (*Keymap, error)
}

// Connect opens the display named by name, or $DISPLAY when name is empty.
func Connect(ctx context.Context, name string) (*Display, error) {
	log := logging.FromContext(ctx)

	conn, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, fmt.Errorf("connect to display %q: %w", name, err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	d := &Display{
		conn:   conn,
		setup:  setup,
		screen: screen,
		root:   screen.Root,
		grabs:  make(grabTable),
	}
	d.fetchKeymap = d.queryKeymap

	if d.atoms, err = internAtoms(conn); err != nil {
		conn.Close()
		return nil, err
	}
	if err := d.RefreshKeymap(); err != nil {
		conn.Close()
		return nil, err
	}

	log.Info().
		Str("display", name).
		Uint32("root", uint32(d.root)).
		Str("screen", d.ScreenRect().String()).
		Msg("connected to X server")
	return d, nil
}

// AcquireExclusiveControl asks for substructure redirection on the root
// window. Only one client may hold it.
func (d *Display) AcquireExclusiveControl(ctx context.Context) error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify |
		xproto.EventMaskStructureNotify)

	err := xproto.ChangeWindowAttributesChecked(d.conn, d.root, xproto.CwEventMask, []uint32{mask}).Check()
	if err != nil {
		var access xproto.AccessError
		if errors.As(err, &access) {
			return ErrAnotherManagerActive
		}
		return fmt.Errorf("select root events: %w", err)
	}

	logging.FromContext(ctx).Debug().Msg("substructure redirection acquired")
	return nil
}

// ScreenRect is the size of the default screen.
func (d *Display) ScreenRect() entity.Rect {
	return entity.NewRect(0, 0, int(d.screen.WidthInPixels), int(d.screen.HeightInPixels))
}

// Root is the root window of the default screen.
func (d *Display) Root() entity.WindowID {
	return entity.WindowID(d.root)
}

// Close shuts the connection down. A blocked NextEvent returns afterwards.
func (d *Display) Close() error {
	d.conn.Close()
	return nil
}
