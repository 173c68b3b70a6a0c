package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// ScriptStep is the outcome of one replayed script line.
type ScriptStep struct {
	Line    int
	Command string
	Tree    string
	Err     error
}

// ReplayScriptUseCase drives the window use case from a text script, one
// command per line:
//
//	add 1              map a window
//	remove 1           unmap a window
//	move left 1        move window 1
//	focus up 2         focus the neighbour of window 2
//	toggle             flip the root split
//	screen 1920x1080   change the screen size
//	gaps 5 [10]        change inner and outer gaps
//
// Blank lines and lines starting with '#' are skipped.
type ReplayScriptUseCase struct {
	windows *ManageWindowsUseCase
}

// NewReplayScriptUseCase creates a new ReplayScriptUseCase.
func NewReplayScriptUseCase(windows *ManageWindowsUseCase) *ReplayScriptUseCase {
	return &ReplayScriptUseCase{windows: windows}
}

// Execute replays the script. Syntax errors stop the replay; errors from
// the layout are recorded on the step and the replay goes on.
func (uc *ReplayScriptUseCase) Execute(ctx context.Context, script io.Reader) ([]ScriptStep, error) {
	var steps []ScriptStep
	scanner := bufio.NewScanner(script)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		run, err := uc.parse(line)
		if err != nil {
			return steps, fmt.Errorf("line %d: %w", lineNo, err)
		}

		stepCtx := logging.With(ctx, map[string]any{"line": lineNo, "command": line})
		step := ScriptStep{Line: lineNo, Command: line}
		step.Err = run(stepCtx)
		step.Tree = uc.windows.Tree().String()
		if step.Err != nil {
			logging.FromContext(stepCtx).Debug().Err(step.Err).Msg("script step failed")
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return steps, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

type scriptCommand func(ctx context.Context) error

func (uc *ReplayScriptUseCase) parse(line string) (scriptCommand, error) {
	fields := strings.Fields(line)
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "add", "map":
		id, err := scriptWindowArgs(verb, args)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			_, err := uc.windows.AddWindow(ctx, id)
			return err
		}, nil

	case "remove", "unmap":
		id, err := scriptWindowArgs(verb, args)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			_, err := uc.windows.RemoveWindow(ctx, id)
			return err
		}, nil

	case "move", "focus":
		if len(args) != 2 {
			return nil, fmt.Errorf("%s needs a direction and a window", verb)
		}
		dir, err := entity.ParseDirection(args[0])
		if err != nil {
			return nil, err
		}
		id, err := parseWindowID(args[1])
		if err != nil {
			return nil, err
		}
		if verb == "move" {
			return func(ctx context.Context) error { return uc.windows.MoveWindow(ctx, dir, id) }, nil
		}
		return func(ctx context.Context) error { return uc.windows.FocusWindow(ctx, dir, id) }, nil

	case "toggle", "toggle_split":
		if len(args) != 0 {
			return nil, fmt.Errorf("%s takes no arguments", verb)
		}
		return uc.windows.ToggleRootOrientation, nil

	case "screen":
		if len(args) != 1 {
			return nil, fmt.Errorf("screen needs a size like 1920x1080")
		}
		w, h, err := parseSize(args[0])
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return uc.windows.SetScreen(ctx, entity.NewRect(0, 0, w, h))
		}, nil

	case "gaps":
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("gaps needs one or two values")
		}
		inner, err := strconv.Atoi(args[0])
		if err != nil || inner < 0 {
			return nil, fmt.Errorf("invalid gap %q", args[0])
		}
		outer := uc.windows.outerGaps
		if len(args) == 2 {
			if outer, err = strconv.Atoi(args[1]); err != nil || outer < 0 {
				return nil, fmt.Errorf("invalid gap %q", args[1])
			}
		}
		return func(ctx context.Context) error {
			return uc.windows.ApplySettings(ctx, WindowSettings{Gaps: inner, OuterGaps: outer})
		}, nil
	}
	return nil, fmt.Errorf("unknown command %q", verb)
}

func scriptWindowArgs(verb string, args []string) (entity.WindowID, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s needs exactly one window", verb)
	}
	return parseWindowID(args[0])
}

func parseWindowID(s string) (entity.WindowID, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid window id %q", s)
	}
	return entity.WindowID(v), nil
}

func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	return width, height, nil
}
