package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/port/mocks"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

type actionFixture struct {
	uc       *ExecuteActionUseCase
	windows  *ManageWindowsUseCase
	surface  *mocks.MockSurfaceController
	launcher *mocks.MockLauncher
	closer   *mocks.MockWindowCloser
}

func newActionFixture(t *testing.T, ids ...entity.WindowID) actionFixture {
	t.Helper()
	windows, surface := newWindowsUseCase(t)
	acceptAll(surface)
	for _, id := range ids {
		_, err := windows.AddWindow(context.Background(), id)
		require.NoError(t, err)
	}

	launcher := mocks.NewMockLauncher(t)
	closer := mocks.NewMockWindowCloser(t)
	return actionFixture{
		uc:       NewExecuteActionUseCase(windows, launcher, closer),
		windows:  windows,
		surface:  surface,
		launcher: launcher,
		closer:   closer,
	}
}

func TestExecuteActionUseCase_Layout(t *testing.T) {
	tests := []struct {
		name   string
		action string
		target entity.WindowID
		want   string
	}{
		{name: "move up", action: "move up", target: 2, want: "H[2 1]"},
		{name: "move left", action: "move left", target: 2, want: "V[2 1]"},
		{name: "toggle split", action: "toggle_split", target: 0, want: "H[1 2]"},
		{name: "focus keeps tree", action: "focus right", target: 1, want: "V[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newActionFixture(t, 1, 2)
			action, err := entity.ParseAction(tt.action)
			require.NoError(t, err)

			require.NoError(t, f.uc.Execute(context.Background(), action, tt.target))
			assert.Equal(t, tt.want, f.windows.Tree().String())
		})
	}
}

func TestExecuteActionUseCase_Exec(t *testing.T) {
	f := newActionFixture(t)
	f.launcher.EXPECT().Launch(mock.Anything, "alacritty", "-e", "tmux").Return(nil).Once()

	err := f.uc.Execute(context.Background(), entity.Action{
		Kind:    entity.ActionExec,
		Command: "alacritty",
		Args:    []string{"-e", "tmux"},
	}, 0)
	require.NoError(t, err)
}

func TestExecuteActionUseCase_ExecError(t *testing.T) {
	f := newActionFixture(t)
	boom := errors.New("not found")
	f.launcher.EXPECT().Launch(mock.Anything, "st").Return(boom).Once()

	err := f.uc.Execute(context.Background(), entity.Action{Kind: entity.ActionExec, Command: "st"}, 0)
	assert.ErrorIs(t, err, boom)
}

func TestExecuteActionUseCase_Kill(t *testing.T) {
	f := newActionFixture(t, 1)
	f.closer.EXPECT().CloseWindow(mock.Anything, entity.WindowID(1)).Return(nil).Once()

	require.NoError(t, f.uc.Execute(context.Background(), entity.Action{Kind: entity.ActionKill}, 1))
	assert.True(t, f.windows.Manages(1), "window leaves the layout on unmap, not on kill")
}

func TestExecuteActionUseCase_KillUnmanaged(t *testing.T) {
	f := newActionFixture(t, 1)

	err := f.uc.Execute(context.Background(), entity.Action{Kind: entity.ActionKill}, 77)
	assert.ErrorIs(t, err, ErrUnknownWindow)
	f.closer.AssertNotCalled(t, "CloseWindow", mock.Anything, mock.Anything)
}

func TestExecuteActionUseCase_Quit(t *testing.T) {
	f := newActionFixture(t)

	err := f.uc.Execute(context.Background(), entity.Action{Kind: entity.ActionQuit}, 0)
	assert.ErrorIs(t, err, ErrQuitRequested)
}
