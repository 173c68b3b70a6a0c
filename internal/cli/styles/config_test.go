package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/cli/styles"
)

func TestConfigRenderer_RenderOpening(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderOpening("/tmp/dumbwm/config.toml", "vim")
	require.Contains(t, out, "Opening")
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "vim")
}

func TestConfigRenderer_RenderValid(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderValid("/tmp/dumbwm/config.toml", 14)
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "14")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("layout.gaps must be non-negative"))
	assert.Contains(t, out, "layout.gaps must be non-negative")
}

func TestConfigRenderer_RenderCreatedShowsBaseName(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderCreated("/home/me/.config/dumbwm/config.toml")
	assert.Contains(t, out, "config.toml")
	assert.NotContains(t, out, "/home/me")
}

func TestConfigRenderer_RenderMissingKeys(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Empty(t, r.RenderMissingKeys(nil))

	out := r.RenderMissingKeys([]port.KeyInfo{{Key: "layout.outer_gaps", Type: "int", DefaultValue: "10"}})
	assert.Contains(t, out, "Missing settings (1)")
	assert.Contains(t, out, "layout.outer_gaps")
	assert.Contains(t, out, "Default: 10")
}

func TestConfigRenderer_RenderUnknownKeys(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderUnknownKeys([]string{"appearance.theme"})
	assert.Contains(t, out, "Unknown settings (1)")
	assert.Contains(t, out, "appearance.theme")
}

func TestConfigRenderer_RenderSchemaWritten(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderSchemaWritten("/tmp/dumbwm/config.schema.json")
	assert.Contains(t, out, "Schema")
	assert.Contains(t, out, "config.schema.json")
}
