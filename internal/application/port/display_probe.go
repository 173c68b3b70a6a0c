package port

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// DisplayStatus is what a probe learned about an X display.
type DisplayStatus struct {
	Name   string
	Screen entity.Rect
	// ManagerActive is true when another client owns substructure
	// redirection on the root window.
	ManagerActive bool
}

// DisplayProbe inspects a display without taking it over.
type DisplayProbe interface {
	ProbeDisplay(ctx context.Context, name string) (*DisplayStatus, error)
}

// ExecutableResolver finds programs the way the launcher would.
type ExecutableResolver interface {
	LookPath(command string) (string, error)
}
