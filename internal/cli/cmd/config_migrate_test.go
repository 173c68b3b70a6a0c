package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/cli/styles"
)

func newTestMigrateModel(t *testing.T, content string) (migrateModel, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	theme := styles.NewTheme()
	return newMigrateModel(context.Background(), styles.NewConfigRenderer(theme), theme, newMigrateUseCase(path)), path
}

func TestMigrateModel_DeclineLeavesFile(t *testing.T) {
	m, path := newTestMigrateModel(t, "[layout]\ngaps = 4\n")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(migrateModel)

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[layout]\ngaps = 4\n", string(data))
}

func TestMigrateModel_AcceptRunsMigration(t *testing.T) {
	m, path := newTestMigrateModel(t, "[layout]\ngaps = 4\n")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = next.(migrateModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(migrateModel)

	require.NotNil(t, cmd)
	assert.Equal(t, migrateStateRunning, m.state)

	msg := cmd()
	result, ok := msg.(migrateResultMsg)
	require.True(t, ok)
	require.NoError(t, result.err)
	assert.Contains(t, result.output.AddedKeys, "layout.outer_gaps")

	next, _ = m.Update(result)
	m = next.(migrateModel)
	assert.Equal(t, migrateStateDone, m.state)
	assert.Contains(t, m.View(), "config.toml")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "outer_gaps")
}
