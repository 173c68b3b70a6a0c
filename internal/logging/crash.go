package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// LogPanic records a panic with its stack trace and re-panics.
// Use it with defer at the top of long-running goroutines:
//
//	defer logging.LogPanic(ctx)
func LogPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("stack", string(debug.Stack())).
		Msg("panic in window manager")

	panic(r)
}
