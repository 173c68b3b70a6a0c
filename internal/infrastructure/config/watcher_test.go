package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLayout(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("[layout]\n"+body+"\n"), filePerm))
}

func TestManager_WatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	writeLayout(t, path, "gaps = 4")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var gaps atomic.Int64
	mgr.OnConfigChange(func(cfg *Config) { gaps.Store(int64(cfg.Layout.Gaps)) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, mgr.Watch(ctx))
	require.NoError(t, mgr.Watch(ctx), "second call is a no-op")

	writeLayout(t, path, "gaps = 8")
	assert.Eventually(t, func() bool { return gaps.Load() == 8 }, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, 8, mgr.Get().Layout.Gaps)
}

func TestManager_WatchKeepsPreviousOnInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	writeLayout(t, path, "gaps = 4")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var calls atomic.Int32
	mgr.OnConfigChange(func(*Config) { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, mgr.Watch(ctx))

	writeLayout(t, path, "gaps = -3")
	time.Sleep(4 * reloadDebounce)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 4, mgr.Get().Layout.Gaps)
}

func TestWatch_NotInitialized(t *testing.T) {
	if globalManager != nil {
		t.Skip("global manager already initialized")
	}
	assert.ErrorIs(t, Watch(context.Background()), errNotInitialized)
}
