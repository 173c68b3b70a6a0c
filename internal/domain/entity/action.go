package entity

import (
	"fmt"
	"strings"
)

// ActionKind identifies what a key binding does.
type ActionKind int

const (
	ActionFocus ActionKind = iota
	ActionMove
	ActionToggleSplit
	ActionKill
	ActionExec
	ActionQuit
)

var actionKindNames = map[ActionKind]string{
	ActionFocus:       "focus",
	ActionMove:        "move",
	ActionToggleSplit: "toggle_split",
	ActionKill:        "kill",
	ActionExec:        "exec",
	ActionQuit:        "quit",
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is a parsed key binding command.
type Action struct {
	Kind      ActionKind
	Direction Direction // focus, move
	Command   string    // exec
	Args      []string  // exec
}

// TargetsWindow reports whether the action applies to the window that
// received the key press rather than to the whole screen.
func (a Action) TargetsWindow() bool {
	switch a.Kind {
	case ActionFocus, ActionMove, ActionKill:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionFocus, ActionMove:
		return a.Kind.String() + " " + a.Direction.String()
	case ActionExec:
		return strings.TrimSpace(a.Kind.String() + " " + strings.Join(append([]string{a.Command}, a.Args...), " "))
	default:
		return a.Kind.String()
	}
}

// ParseAction parses binding values such as "focus left", "move up",
// "toggle_split", "kill", "exec st" or "quit".
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action")
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "focus", "move":
		if len(args) != 1 {
			return Action{}, fmt.Errorf("%s needs exactly one direction: %q", verb, s)
		}
		dir, err := ParseDirection(args[0])
		if err != nil {
			return Action{}, fmt.Errorf("invalid action %q: %w", s, err)
		}
		kind := ActionFocus
		if verb == "move" {
			kind = ActionMove
		}
		return Action{Kind: kind, Direction: dir}, nil
	case "exec", "launch":
		if len(args) == 0 {
			return Action{}, fmt.Errorf("exec needs a command: %q", s)
		}
		return Action{Kind: ActionExec, Command: args[0], Args: args[1:]}, nil
	}

	if len(args) != 0 {
		return Action{}, fmt.Errorf("%s takes no arguments: %q", verb, s)
	}
	switch verb {
	case "toggle_split", "toggle":
		return Action{Kind: ActionToggleSplit}, nil
	case "kill", "close":
		return Action{Kind: ActionKill}, nil
	case "quit", "exit":
		return Action{Kind: ActionQuit}, nil
	}
	return Action{}, fmt.Errorf("unknown action %q", s)
}
