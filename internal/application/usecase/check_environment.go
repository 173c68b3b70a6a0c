package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/logging"
)

// CheckStatus grades one environment check.
type CheckStatus string

const (
	CheckOK      CheckStatus = "ok"
	CheckWarning CheckStatus = "warning"
	CheckFailed  CheckStatus = "failed"
)

// EnvironmentCheck is the result of a single check.
type EnvironmentCheck struct {
	Name   string
	Status CheckStatus
	Detail string
}

// ProgramRequirement names a program the configuration wants to launch.
type ProgramRequirement struct {
	Label   string
	Command string
}

// CheckEnvironmentInput selects the display and programs to check.
type CheckEnvironmentInput struct {
	Display  string
	Programs []ProgramRequirement
}

// CheckEnvironmentOutput holds every check in order. OK is false when any
// check failed; warnings do not count.
type CheckEnvironmentOutput struct {
	OK     bool
	Checks []EnvironmentCheck
}

// CheckEnvironmentUseCase verifies that the window manager can start: the
// display is reachable, nobody else manages it, and launcher programs exist.
type CheckEnvironmentUseCase struct {
	probe    port.DisplayProbe
	resolver port.ExecutableResolver
}

// NewCheckEnvironmentUseCase creates a new use case.
func NewCheckEnvironmentUseCase(probe port.DisplayProbe, resolver port.ExecutableResolver) *CheckEnvironmentUseCase {
	return &CheckEnvironmentUseCase{probe: probe, resolver: resolver}
}

// Execute runs all checks. It only returns an error for a cancelled context.
func (uc *CheckEnvironmentUseCase) Execute(ctx context.Context, input CheckEnvironmentInput) (*CheckEnvironmentOutput, error) {
	ctx = logging.WithComponent(ctx, "doctor")
	log := logging.FromContext(ctx)

	checks := make([]EnvironmentCheck, 0, len(input.Programs)+2)
	checks = append(checks, uc.checkDisplay(ctx, input.Display)...)

	for _, prog := range input.Programs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		checks = append(checks, uc.checkProgram(prog))
	}

	ok := true
	for _, c := range checks {
		if c.Status == CheckFailed {
			ok = false
		}
	}

	log.Debug().Bool("ok", ok).Int("checks", len(checks)).Msg("environment check complete")
	return &CheckEnvironmentOutput{OK: ok, Checks: checks}, nil
}

func (uc *CheckEnvironmentUseCase) checkDisplay(ctx context.Context, name string) []EnvironmentCheck {
	status, err := uc.probe.ProbeDisplay(ctx, name)
	if err != nil {
		return []EnvironmentCheck{{Name: "Display", Status: CheckFailed, Detail: err.Error()}}
	}

	display := EnvironmentCheck{
		Name:   "Display",
		Status: CheckOK,
		Detail: fmt.Sprintf("%s (%dx%d)", status.Name, status.Screen.W, status.Screen.H),
	}
	manager := EnvironmentCheck{Name: "Window manager", Status: CheckOK, Detail: "display is free"}
	if status.ManagerActive {
		manager.Status = CheckWarning
		manager.Detail = "another window manager is running on this display"
	}
	return []EnvironmentCheck{display, manager}
}

func (uc *CheckEnvironmentUseCase) checkProgram(prog ProgramRequirement) EnvironmentCheck {
	check := EnvironmentCheck{Name: prog.Label}
	if prog.Command == "" {
		check.Status = CheckWarning
		check.Detail = "not configured"
		return check
	}

	path, err := uc.resolver.LookPath(prog.Command)
	if err != nil {
		check.Status = CheckFailed
		check.Detail = err.Error()
		return check
	}
	check.Status = CheckOK
	check.Detail = path
	return check
}
