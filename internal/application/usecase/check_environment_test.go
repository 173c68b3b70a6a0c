package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/application/port/mocks"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

func TestCheckEnvironmentUseCase_AllGood(t *testing.T) {
	probe := mocks.NewMockDisplayProbe(t)
	resolver := mocks.NewMockExecutableResolver(t)

	probe.EXPECT().ProbeDisplay(mock.Anything, ":1").Return(&port.DisplayStatus{
		Name:   ":1",
		Screen: entity.NewRect(0, 0, 1920, 1080),
	}, nil)
	resolver.EXPECT().LookPath("xterm").Return("/usr/bin/xterm", nil)

	uc := NewCheckEnvironmentUseCase(probe, resolver)
	out, err := uc.Execute(context.Background(), CheckEnvironmentInput{
		Display:  ":1",
		Programs: []ProgramRequirement{{Label: "Terminal", Command: "xterm"}},
	})
	require.NoError(t, err)

	assert.True(t, out.OK)
	require.Len(t, out.Checks, 3)
	assert.Equal(t, ":1 (1920x1080)", out.Checks[0].Detail)
	assert.Equal(t, CheckOK, out.Checks[1].Status)
	assert.Equal(t, "/usr/bin/xterm", out.Checks[2].Detail)
}

func TestCheckEnvironmentUseCase_ManagerActiveIsWarning(t *testing.T) {
	probe := mocks.NewMockDisplayProbe(t)
	resolver := mocks.NewMockExecutableResolver(t)

	probe.EXPECT().ProbeDisplay(mock.Anything, "").Return(&port.DisplayStatus{
		Name:          ":0",
		Screen:        entity.NewRect(0, 0, 800, 600),
		ManagerActive: true,
	}, nil)

	out, err := NewCheckEnvironmentUseCase(probe, resolver).Execute(context.Background(), CheckEnvironmentInput{})
	require.NoError(t, err)

	assert.True(t, out.OK)
	require.Len(t, out.Checks, 2)
	assert.Equal(t, CheckWarning, out.Checks[1].Status)
}

func TestCheckEnvironmentUseCase_Failures(t *testing.T) {
	probe := mocks.NewMockDisplayProbe(t)
	resolver := mocks.NewMockExecutableResolver(t)

	probe.EXPECT().ProbeDisplay(mock.Anything, ":9").Return(nil, errors.New("connection refused"))
	resolver.EXPECT().LookPath("nope").Return("", errors.New("find nope: not found"))

	out, err := NewCheckEnvironmentUseCase(probe, resolver).Execute(context.Background(), CheckEnvironmentInput{
		Display: ":9",
		Programs: []ProgramRequirement{
			{Label: "Terminal", Command: "nope"},
			{Label: "Menu"},
		},
	})
	require.NoError(t, err)

	assert.False(t, out.OK)
	require.Len(t, out.Checks, 3)
	assert.Equal(t, CheckFailed, out.Checks[0].Status)
	assert.Contains(t, out.Checks[0].Detail, "connection refused")
	assert.Equal(t, CheckFailed, out.Checks[1].Status)
	assert.Equal(t, CheckWarning, out.Checks[2].Status)
	assert.Equal(t, "not configured", out.Checks[2].Detail)
}

func TestCheckEnvironmentUseCase_Cancelled(t *testing.T) {
	probe := mocks.NewMockDisplayProbe(t)
	resolver := mocks.NewMockExecutableResolver(t)
	probe.EXPECT().ProbeDisplay(mock.Anything, "").Return(nil, errors.New("no display"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCheckEnvironmentUseCase(probe, resolver).Execute(ctx, CheckEnvironmentInput{
		Programs: []ProgramRequirement{{Label: "Terminal", Command: "xterm"}},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
