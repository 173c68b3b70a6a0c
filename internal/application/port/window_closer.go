package port

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// WindowCloser asks a client to close one of its windows.
type WindowCloser interface {
	// CloseWindow asks politely when the client supports it and
	// disconnects the client otherwise.
	CloseWindow(ctx context.Context, id entity.WindowID) error
}
