package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

const unboundAction = "none"

// Binding couples a fully qualified chord with its parsed action.
type Binding struct {
	Chord  entity.Chord
	Action entity.Action
}

// ResolveBindings expands the configured bindings into absolute chords.
// "exec terminal" and "exec menu" are replaced by the launcher commands.
// Bindings set to "none" are dropped. All problems are reported together.
func (c *Config) ResolveBindings() ([]Binding, error) {
	mod, err := entity.ParseModifier(c.Keybindings.Modifier)
	if err != nil {
		return nil, fmt.Errorf("keybindings.modifier: %w", err)
	}

	var (
		bindings []Binding
		errs     []error
		seen     = make(map[entity.Chord]string, len(c.Keybindings.Bindings))
	)
	for key, value := range c.Keybindings.Bindings {
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, unboundAction) {
			continue
		}

		chord, err := entity.ParseChord(key)
		if err != nil {
			errs = append(errs, fmt.Errorf("keybindings.bindings: %w", err))
			continue
		}
		chord.Mods |= mod

		if prev, dup := seen[chord]; dup {
			errs = append(errs, fmt.Errorf("keybindings.bindings: %q and %q both bind %s", prev, key, chord))
			continue
		}
		seen[chord] = key

		action, err := entity.ParseAction(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("keybindings.bindings.%s: %w", key, err))
			continue
		}
		action, err = c.expandLauncher(action)
		if err != nil {
			errs = append(errs, fmt.Errorf("keybindings.bindings.%s: %w", key, err))
			continue
		}

		bindings = append(bindings, Binding{Chord: chord, Action: action})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].Chord.String() < bindings[j].Chord.String()
	})
	return bindings, nil
}

func (c *Config) expandLauncher(action entity.Action) (entity.Action, error) {
	if action.Kind != entity.ActionExec || len(action.Args) != 0 {
		return action, nil
	}

	var command, name string
	switch action.Command {
	case "terminal":
		command, name = c.Launcher.Terminal, "launcher.terminal"
	case "menu":
		command, name = c.Launcher.Menu, "launcher.menu"
	default:
		return action, nil
	}

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return action, fmt.Errorf("%s is empty", name)
	}
	action.Command = fields[0]
	action.Args = fields[1:]
	return action, nil
}
