package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/cli/styles"
)

func TestGetLogFiles_ActiveFirstThenNewest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	write := func(name string, age time.Duration) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		require.NoError(t, os.Chtimes(path, now.Add(-age), now.Add(-age)))
	}
	write("dumbwm.log.2026-01-01-00-00-00.000.gz", 48*time.Hour)
	write("dumbwm.log", 72*time.Hour)
	write("dumbwm.log.2026-01-02-00-00-00.000.gz", time.Hour)
	write("other.txt", 0)

	files, err := getLogFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.True(t, files[0].Active)
	assert.Equal(t, "dumbwm.log.2026-01-02-00-00-00.000.gz", files[1].Name)
	assert.Equal(t, "dumbwm.log.2026-01-01-00-00-00.000.gz", files[2].Name)
}

func TestGetLogFiles_MissingDir(t *testing.T) {
	files, err := getLogFiles(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLastLines(t *testing.T) {
	in := "a\nb\nc\nd\n"

	assert.Equal(t, []string{"c", "d"}, lastLines(strings.NewReader(in), 2))
	assert.Equal(t, []string{"a", "b", "c", "d"}, lastLines(strings.NewReader(in), 10))
	assert.Nil(t, lastLines(strings.NewReader(in), 0))
}

func TestColorizeLogLine_JSON(t *testing.T) {
	theme := styles.NewTheme()
	line := `{"level":"warn","time":"2026-01-01T10:11:12Z","component":"wm","message":"window not managed"}`

	out := colorizeLogLine(line, theme)
	assert.Contains(t, out, "10:11:12")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "wm:")
	assert.Contains(t, out, "window not managed")
}

func TestColorizeLogLine_Console(t *testing.T) {
	theme := styles.NewTheme()
	assert.Contains(t, colorizeLogLine("10:00 INF started", theme), "started")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KiB", formatSize(1536))
	assert.Equal(t, "10.0 MiB", formatSize(10*1024*1024))
}
