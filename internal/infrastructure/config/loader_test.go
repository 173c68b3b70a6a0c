package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, defaultGaps, mgr.viper.GetInt("layout.gaps"))
	assert.Equal(t, "vertical", mgr.viper.GetString("layout.default_split"))
	assert.Equal(t, "mod4", mgr.viper.GetString("keybindings.modifier"))
	assert.Equal(t, "st", mgr.viper.GetString("launcher.terminal"))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumbwm")
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	_, err = os.Stat(filepath.Join(dir, configFileName))
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, defaultGaps, cfg.Layout.Gaps)
	assert.Equal(t, defaultOuterGaps, cfg.Layout.OuterGaps)
	assert.Equal(t, "focus left", cfg.Keybindings.Bindings["h"])
	assert.Equal(t, "exec terminal", cfg.Keybindings.Bindings["return"])
}

func TestManager_LoadUserFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[layout]
gaps = 4
default_split = "Horizontal"

[keybindings]
modifier = "mod1"

[keybindings.bindings]
"shift+Return" = "exec terminal"
"q" = "kill"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), filePerm))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 4, cfg.Layout.Gaps)
	assert.Equal(t, defaultOuterGaps, cfg.Layout.OuterGaps, "unset keys fall back to defaults")
	assert.Equal(t, "horizontal", cfg.Layout.DefaultSplit)
	assert.Equal(t, "mod1", cfg.Keybindings.Modifier)
	assert.Len(t, cfg.Keybindings.Bindings, 2, "user bindings replace the defaults")
	assert.Equal(t, filepath.Join(dir, configFileName), mgr.GetConfigFile())
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[layout]
gaps = -3

[keybindings.bindings]
"h" = "teleport left"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), filePerm))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.gaps")
	assert.Contains(t, err.Error(), "teleport")
}

func TestManager_EnvOverride(t *testing.T) {
	t.Setenv("DUMBWM_LAYOUT_GAPS", "25")
	t.Setenv("DUMBWM_LOG_LEVEL", "debug")

	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 25, cfg.Layout.Gaps)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_SaveReloads(t *testing.T) {
	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.Gaps = 3
	cfg.Launcher.Terminal = "alacritty"
	require.NoError(t, mgr.Save(cfg))

	got := mgr.Get()
	assert.Equal(t, 3, got.Layout.Gaps)
	assert.Equal(t, "alacritty", got.Launcher.Terminal)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.DefaultSplit = "diagonal"
	require.Error(t, mgr.Save(cfg))
	assert.Equal(t, "vertical", mgr.Get().Layout.DefaultSplit)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Keybindings.Bindings["h"] = "quit"

	assert.Equal(t, "focus left", mgr.Get().Keybindings.Bindings["h"])
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{
		Layout:      LayoutConfig{DefaultSplit: " Vertical "},
		Keybindings: KeybindingsConfig{Modifier: "MOD4"},
		Logging:     LoggingConfig{Level: "DEBUG", Format: "weird"},
	}

	normalizeConfig(cfg)

	assert.Equal(t, "vertical", cfg.Layout.DefaultSplit)
	assert.Equal(t, "mod4", cfg.Keybindings.Modifier)
	assert.Equal(t, DefaultBindings(), cfg.Keybindings.Bindings)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}
