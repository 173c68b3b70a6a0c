package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

func TestReplayScriptUseCase_Execute(t *testing.T) {
	windows, surface := newWindowsUseCase(t)
	acceptAll(surface)
	uc := NewReplayScriptUseCase(windows)

	script := `
# three windows, then reshape
add 1
add 2
move up 2
toggle
remove 1
`
	steps, err := uc.Execute(context.Background(), strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, steps, 5)

	trees := make([]string, len(steps))
	for i, s := range steps {
		assert.NoError(t, s.Err, s.Command)
		trees[i] = s.Tree
	}
	assert.Equal(t, []string{"V[1]", "V[1 2]", "H[2 1]", "V[2 1]", "V[2]"}, trees)
	assert.Equal(t, 3, steps[0].Line)
	assert.Equal(t, "move up 2", steps[2].Command)
}

func TestReplayScriptUseCase_StepErrorsContinue(t *testing.T) {
	windows, surface := newWindowsUseCase(t)
	acceptAll(surface)
	uc := NewReplayScriptUseCase(windows)

	steps, err := uc.Execute(context.Background(), strings.NewReader("add 1\nfocus left 7\nremove 9\nadd 2\n"))
	require.NoError(t, err)
	require.Len(t, steps, 4)

	assert.ErrorIs(t, steps[1].Err, ErrUnknownWindow)
	assert.ErrorIs(t, steps[2].Err, ErrUnknownWindow)
	assert.Equal(t, "V[1 2]", steps[3].Tree)
}

func TestReplayScriptUseCase_ScreenAndGaps(t *testing.T) {
	windows, surface := newWindowsUseCase(t)
	acceptAll(surface)
	uc := NewReplayScriptUseCase(windows)

	_, err := uc.Execute(context.Background(), strings.NewReader("add 0x1\nscreen 800x600\ngaps 4 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, windows.Tree().Gap())
	assert.Equal(t, entity.NewRect(0, 0, 800, 600), windows.ContentRect())
}

func TestReplayScriptUseCase_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		errMsg string
	}{
		{"unknown verb", "add 1\nswap 1 2", "line 2: unknown command"},
		{"missing window", "add", "needs exactly one window"},
		{"zero window", "add 0", "invalid window id"},
		{"bad direction", "move sideways 1", "line 1"},
		{"bad size", "screen 800", "invalid size"},
		{"negative gap", "gaps -1", "invalid gap"},
		{"toggle args", "toggle now", "takes no arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, surface := newWindowsUseCase(t)
			acceptAll(surface)
			uc := NewReplayScriptUseCase(windows)

			_, err := uc.Execute(context.Background(), strings.NewReader(tt.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
