package usecase

import (
	"context"
	"errors"
	"go/build"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/port/mocks"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/layout"
)

var testScreen = entity.NewRect(0, 0, 1000, 800)

func newWindowsUseCase(t *testing.T) (*ManageWindowsUseCase, *mocks.MockSurfaceController) {
	t.Helper()
	surface := mocks.NewMockSurfaceController(t)
	uc := NewManageWindowsUseCase(surface, testScreen, WindowSettings{
		Gaps:         10,
		OuterGaps:    10,
		DefaultSplit: layout.SplitVertical,
	})
	return uc, surface
}

// acceptAll lets every surface call succeed without further checks.
func acceptAll(surface *mocks.MockSurfaceController) {
	surface.EXPECT().ApplyGeometry(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	surface.EXPECT().Raise(mock.Anything, mock.Anything).Return(nil).Maybe()
	surface.EXPECT().SetFocus(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func TestManageWindowsUseCase_ContentRect(t *testing.T) {
	uc, _ := newWindowsUseCase(t)
	assert.Equal(t, entity.NewRect(10, 10, 980, 780), uc.ContentRect())
}

func TestManageWindowsUseCase_AddWindow(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)

	surface.EXPECT().ApplyGeometry(mock.Anything, entity.WindowID(1), entity.NewRect(10, 10, 980, 780)).Return(nil).Once()
	surface.EXPECT().Raise(mock.Anything, entity.WindowID(1)).Return(nil).Once()
	surface.EXPECT().SetFocus(mock.Anything, entity.WindowID(1)).Return(nil).Once()

	added, err := uc.AddWindow(ctx, 1)
	require.NoError(t, err)
	assert.True(t, added)

	surface.EXPECT().ApplyGeometry(mock.Anything, entity.WindowID(1), entity.NewRect(10, 10, 485, 780)).Return(nil).Once()
	surface.EXPECT().ApplyGeometry(mock.Anything, entity.WindowID(2), entity.NewRect(505, 10, 485, 780)).Return(nil).Once()
	surface.EXPECT().Raise(mock.Anything, entity.WindowID(2)).Return(nil).Once()
	surface.EXPECT().SetFocus(mock.Anything, entity.WindowID(2)).Return(nil).Once()

	added, err = uc.AddWindow(ctx, 2)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "V[1 2]", uc.Tree().String())
}

func TestManageWindowsUseCase_AddWindowTwice(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	acceptAll(surface)

	_, err := uc.AddWindow(ctx, 1)
	require.NoError(t, err)

	added, err := uc.AddWindow(ctx, 1)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []entity.WindowID{1}, uc.Tree().Windows())
}

func TestManageWindowsUseCase_RemoveWindowFocusesRemaining(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	acceptAll(surface)

	for _, id := range []entity.WindowID{1, 2} {
		_, err := uc.AddWindow(ctx, id)
		require.NoError(t, err)
	}

	fresh := mocks.NewMockSurfaceController(t)
	uc.surface = fresh
	uc.tree = layout.NewTree(fresh, layout.WithGap(10), layout.WithRoot(uc.tree.Root()))

	fresh.EXPECT().ApplyGeometry(mock.Anything, entity.WindowID(2), entity.NewRect(10, 10, 980, 780)).Return(nil).Once()
	fresh.EXPECT().Raise(mock.Anything, entity.WindowID(2)).Return(nil).Once()
	fresh.EXPECT().SetFocus(mock.Anything, entity.WindowID(2)).Return(nil).Once()

	empty, err := uc.RemoveWindow(ctx, 1)
	require.NoError(t, err)
	assert.False(t, empty, "window 2 is still tiled")
	assert.Equal(t, "V[2]", uc.Tree().String())
}

func TestManageWindowsUseCase_RemoveLastWindow(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	acceptAll(surface)

	_, err := uc.AddWindow(ctx, 1)
	require.NoError(t, err)

	empty, err := uc.RemoveWindow(ctx, 1)
	require.NoError(t, err)
	assert.True(t, empty)
	assert.True(t, uc.Tree().Empty())
}

func TestManageWindowsUseCase_RemoveUnknownWindow(t *testing.T) {
	uc, _ := newWindowsUseCase(t)

	empty, err := uc.RemoveWindow(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnknownWindow)
	assert.False(t, empty)
}

func TestManageWindowsUseCase_MoveWindow(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	acceptAll(surface)

	for _, id := range []entity.WindowID{1, 2} {
		_, err := uc.AddWindow(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, uc.MoveWindow(ctx, entity.DirUp, 1))
	assert.Equal(t, "H[1 2]", uc.Tree().String())

	surface.AssertCalled(t, "ApplyGeometry", mock.Anything, entity.WindowID(1), entity.NewRect(10, 10, 980, 385))
	surface.AssertCalled(t, "ApplyGeometry", mock.Anything, entity.WindowID(2), entity.NewRect(10, 405, 980, 385))
}

func TestManageWindowsUseCase_UnknownWindow(t *testing.T) {
	ctx := context.Background()
	uc, _ := newWindowsUseCase(t)

	err := uc.MoveWindow(ctx, entity.DirLeft, 9)
	assert.ErrorIs(t, err, ErrUnknownWindow)

	err = uc.FocusWindow(ctx, entity.DirLeft, 9)
	assert.ErrorIs(t, err, ErrUnknownWindow)
}

func TestManageWindowsUseCase_FocusWindow(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	acceptAll(surface)

	for _, id := range []entity.WindowID{1, 2} {
		_, err := uc.AddWindow(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, uc.FocusWindow(ctx, entity.DirLeft, 2))
	surface.AssertCalled(t, "SetFocus", mock.Anything, entity.WindowID(1))
	assert.Equal(t, "V[1 2]", uc.Tree().String())
}

func TestManageWindowsUseCase_ToggleRootOrientation(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	acceptAll(surface)

	for _, id := range []entity.WindowID{1, 2} {
		_, err := uc.AddWindow(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, uc.ToggleRootOrientation(ctx))
	assert.Equal(t, "H[1 2]", uc.Tree().String())
}

func TestManageWindowsUseCase_SetScreen(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	acceptAll(surface)

	_, err := uc.AddWindow(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, uc.SetScreen(ctx, entity.NewRect(0, 0, 1920, 1080)))
	surface.AssertCalled(t, "ApplyGeometry", mock.Anything, entity.WindowID(1), entity.NewRect(10, 10, 1900, 1060))
}

func TestManageWindowsUseCase_ApplySettings(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	acceptAll(surface)

	for _, id := range []entity.WindowID{1, 2} {
		_, err := uc.AddWindow(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, uc.ApplySettings(ctx, WindowSettings{Gaps: 0, OuterGaps: 0}))
	assert.Equal(t, testScreen, uc.ContentRect())
	surface.AssertCalled(t, "ApplyGeometry", mock.Anything, entity.WindowID(1), entity.NewRect(0, 0, 500, 800))
	surface.AssertCalled(t, "ApplyGeometry", mock.Anything, entity.WindowID(2), entity.NewRect(500, 0, 500, 800))
}

func TestManageWindowsUseCase_SurfaceError(t *testing.T) {
	ctx := context.Background()
	uc, surface := newWindowsUseCase(t)
	boom := errors.New("bad window")

	surface.EXPECT().ApplyGeometry(mock.Anything, entity.WindowID(1), mock.Anything).Return(boom).Once()

	added, err := uc.AddWindow(ctx, 1)
	assert.True(t, added)
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrSurfaceApplyFailed)
	assert.ErrorIs(t, err, boom)
}

// Filenames ending in a GOOS such as _windows.go are dropped silently on
// other platforms; the window API must build where X11 runs.
func TestManageWindowsUseCase_BuildsOnLinux(t *testing.T) {
	bctx := build.Default
	bctx.GOOS = "linux"
	bctx.GOARCH = "amd64"

	pkg, err := bctx.ImportDir(".", 0)
	require.NoError(t, err)
	assert.Empty(t, pkg.IgnoredGoFiles)
	assert.Contains(t, pkg.GoFiles, "manage_window.go")
	assert.Contains(t, pkg.TestGoFiles, "manage_window_test.go")
}
