package styles_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

func TestConfigSchemaRenderer_Render(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	assert.Contains(t, r.Render(nil), "No configuration keys found")

	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "logging.level", Type: "string", Default: "info", Values: []string{"info", "debug"}, Section: "Logging"},
		{Key: "extra.key", Type: "bool", Default: "false", Section: "Extra"},
		{Key: "layout.gaps", Type: "int", Default: "10", Range: ">= 0", Section: "Layout"},
	})

	assert.Contains(t, out, "Config Schema Reference")
	assert.Contains(t, out, "Values: info, debug")
	assert.Contains(t, out, "Range: >= 0")

	layout := strings.Index(out, "layout.gaps")
	logging := strings.Index(out, "logging.level")
	extra := strings.Index(out, "extra.key")
	assert.Less(t, layout, logging)
	assert.Less(t, logging, extra)
}

func TestConfigSchemaRenderer_RenderJSON(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	out, err := r.RenderJSON([]entity.ConfigKeyInfo{{Key: "layout.gaps", Type: "int", Default: "10", Section: "Layout"}})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "layout.gaps", decoded[0]["key"])
	assert.NotContains(t, out, "values")
}
