package port

import "context"

// Launcher starts external programs detached from the window manager.
type Launcher interface {
	// Launch starts command with args and returns once the process is running.
	Launch(ctx context.Context, command string, args ...string) error
}
