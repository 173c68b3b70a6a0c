//go:build !linux && !darwin

package logging

import (
	"context"
	"runtime/debug"
)

func EnableCrashForensics() {
	debug.SetTraceback("crash")
}

func LogCoreDumpLimits(context.Context) {}
