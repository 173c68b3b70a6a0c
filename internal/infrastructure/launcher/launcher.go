// Package launcher starts programs on behalf of key bindings.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/bnema/dumbwm/internal/logging"
)

// Launcher starts detached child processes. Each child runs in its own
// session so it survives the window manager and does not receive its
// terminal signals.
type Launcher struct {
	env []string
}

// New creates a Launcher. extraEnv entries ("KEY=value") are appended to
// the window manager's environment for every child.
func New(extraEnv ...string) *Launcher {
	return &Launcher{env: extraEnv}
}

// Launch starts command and returns once it is running. The child is reaped
// in the background.
func (l *Launcher) Launch(ctx context.Context, command string, args ...string) error {
	log := logging.FromContext(ctx)

	path, err := l.LookPath(command)
	if err != nil {
		return err
	}

	// Not tied to ctx: children outlive the event that started them.
	cmd := exec.Command(path, args...)
	cmd.Env = append(os.Environ(), l.env...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", command, err)
	}

	pid := cmd.Process.Pid
	log.Info().Str("command", command).Strs("args", args).Int("pid", pid).Msg("launched")

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug().Err(err).Str("command", command).Int("pid", pid).Msg("child exited")
		}
	}()
	return nil
}

// LookPath resolves command against $PATH.
func (l *Launcher) LookPath(command string) (string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return "", fmt.Errorf("find %s: %w", command, err)
	}
	return path, nil
}
