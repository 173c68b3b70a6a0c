package x11

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// Probe opens short-lived connections to answer "could dumbwm run here?".
type Probe struct{}

// NewProbe creates a Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// ProbeDisplay connects to name ($DISPLAY when empty), reads the screen size
// and tests whether substructure redirection is free. Redirection obtained
// by the test is released when the connection closes.
func (p *Probe) ProbeDisplay(ctx context.Context, name string) (*port.DisplayStatus, error) {
	if name == "" {
		name = os.Getenv("DISPLAY")
	}

	conn, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, fmt.Errorf("connect to display %q: %w", name, err)
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	status := &port.DisplayStatus{
		Name:   name,
		Screen: entity.NewRect(0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels)),
	}

	err = xproto.ChangeWindowAttributesChecked(conn, screen.Root, xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureRedirect}).Check()
	var access xproto.AccessError
	switch {
	case errors.As(err, &access):
		status.ManagerActive = true
	case err != nil:
		return nil, fmt.Errorf("test substructure redirection: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("display", name).
		Str("screen", status.Screen.String()).
		Bool("manager_active", status.ManagerActive).
		Msg("display probed")
	return status, nil
}
