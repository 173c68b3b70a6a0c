package config

import (
	"testing"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findBinding(bindings []Binding, chord string) (Binding, bool) {
	for _, b := range bindings {
		if b.Chord.String() == chord {
			return b, true
		}
	}
	return Binding{}, false
}

func TestResolveBindings_Defaults(t *testing.T) {
	bindings, err := DefaultConfig().ResolveBindings()
	require.NoError(t, err)
	assert.Len(t, bindings, len(DefaultBindings()))

	b, ok := findBinding(bindings, "mod4+shift+h")
	require.True(t, ok)
	assert.Equal(t, entity.Action{Kind: entity.ActionMove, Direction: entity.DirLeft}, b.Action)

	b, ok = findBinding(bindings, "mod4+Return")
	require.True(t, ok)
	assert.Equal(t, entity.ActionExec, b.Action.Kind)
	assert.Equal(t, "st", b.Action.Command)

	b, ok = findBinding(bindings, "mod4+space")
	require.True(t, ok)
	assert.Equal(t, "dmenu_run", b.Action.Command)
}

func TestResolveBindings_Sorted(t *testing.T) {
	bindings, err := DefaultConfig().ResolveBindings()
	require.NoError(t, err)

	for i := 1; i < len(bindings); i++ {
		assert.Less(t, bindings[i-1].Chord.String(), bindings[i].Chord.String())
	}
}

func TestResolveBindings_LauncherWithArgs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Launcher.Terminal = "alacritty -e tmux"
	cfg.Keybindings.Bindings = map[string]string{"return": "exec terminal"}

	bindings, err := cfg.ResolveBindings()
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "alacritty", bindings[0].Action.Command)
	assert.Equal(t, []string{"-e", "tmux"}, bindings[0].Action.Args)
}

func TestResolveBindings_ExplicitCommandKept(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Bindings = map[string]string{"b": "exec firefox --new-window"}

	bindings, err := cfg.ResolveBindings()
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "firefox", bindings[0].Action.Command)
	assert.Equal(t, []string{"--new-window"}, bindings[0].Action.Args)
}

func TestResolveBindings_None(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Bindings["shift+e"] = "none"

	bindings, err := cfg.ResolveBindings()
	require.NoError(t, err)
	_, ok := findBinding(bindings, "mod4+shift+e")
	assert.False(t, ok)
}

func TestResolveBindings_Duplicate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Bindings = map[string]string{
		"shift+h": "move left",
		"Shift+H": "kill",
	}

	_, err := cfg.ResolveBindings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both bind")
}
