package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_CoversDefaultKeys(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	documented := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
		documented[k.Key] = true
	}

	for _, key := range []string{
		"layout.gaps",
		"layout.outer_gaps",
		"layout.default_split",
		"keybindings.modifier",
		"keybindings.bindings.shift+h",
		"launcher.terminal",
		"logging.max_size_mb",
	} {
		assert.True(t, documented[key], key)
	}
}

func TestSchemaProvider_DefaultsMatchConfig(t *testing.T) {
	defaults := DefaultConfig()
	for _, k := range NewSchemaProvider().GetSchema() {
		switch k.Key {
		case "layout.default_split":
			assert.Equal(t, defaults.Layout.DefaultSplit, k.Default)
			assert.Contains(t, k.Values, k.Default)
		case "launcher.menu":
			assert.Equal(t, defaults.Launcher.Menu, k.Default)
		case "logging.level":
			assert.Contains(t, k.Values, k.Default)
		}
	}
}

func TestJSONSchema_UsesTOMLNames(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "dumbwm Configuration", decoded["title"])
	assert.Contains(t, string(data), `"outer_gaps"`)
	assert.Contains(t, string(data), `"enable_file_log"`)
}

func TestGenerateSchemaFile(t *testing.T) {
	dir := t.TempDir()

	path, err := GenerateSchemaFile(filepath.Join(dir, configFileName))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SchemaFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
