package launcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunch_RunsDetachedChild(t *testing.T) {
	out := filepath.Join(t.TempDir(), "marker")

	l := New("DUMBWM_TEST_MARKER=" + out)
	err := l.Launch(context.Background(), "sh", "-c", `printf ok > "$DUMBWM_TEST_MARKER"`)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "ok"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestLaunch_UnknownCommand(t *testing.T) {
	err := New().Launch(context.Background(), "dumbwm-definitely-not-a-command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dumbwm-definitely-not-a-command")
}

func TestLookPath(t *testing.T) {
	path, err := New().LookPath("sh")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	_, err = New().LookPath("dumbwm-definitely-not-a-command")
	assert.Error(t, err)
}
