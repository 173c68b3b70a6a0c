package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Modifier is a bit set of keyboard modifiers.
type Modifier uint16

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt   // Mod1
	ModSuper // Mod4
)

var modifierNames = []struct {
	mod   Modifier
	names []string
}{
	{ModSuper, []string{"mod4", "super", "logo", "win"}},
	{ModAlt, []string{"mod1", "alt"}},
	{ModControl, []string{"control", "ctrl"}},
	{ModShift, []string{"shift"}},
}

// ParseModifier resolves a single modifier token.
func ParseModifier(s string) (Modifier, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for _, m := range modifierNames {
		for _, name := range m.names {
			if name == token {
				return m.mod, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown modifier %q", s)
}

func (m Modifier) String() string {
	var parts []string
	for _, entry := range modifierNames {
		if m&entry.mod != 0 {
			parts = append(parts, entry.names[0])
		}
	}
	return strings.Join(parts, "+")
}

// Chord is a key press together with the modifiers held down.
// Key holds the X keysym name ("h", "Return", "space").
type Chord struct {
	Mods Modifier
	Key  string
}

// ParseChord parses strings like "mod4+shift+h".
// Modifier tokens are case-insensitive, the key keeps its case.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return Chord{}, fmt.Errorf("invalid key chord %q", s)
	}

	var chord Chord
	for _, part := range parts[:len(parts)-1] {
		mod, err := ParseModifier(part)
		if err != nil {
			return Chord{}, fmt.Errorf("invalid key chord %q: %w", s, err)
		}
		chord.Mods |= mod
	}
	chord.Key = normalizeKeyName(parts[len(parts)-1])
	return chord, nil
}

func (c Chord) String() string {
	if c.Mods == 0 {
		return c.Key
	}
	return c.Mods.String() + "+" + c.Key
}

// normalizeKeyName maps common aliases onto keysym names.
// Single letters are lowercased so "H" and "h" bind the same key.
func normalizeKeyName(key string) string {
	switch strings.ToLower(key) {
	case "return", "enter":
		return "Return"
	case "space":
		return "space"
	case "escape", "esc":
		return "Escape"
	case "tab":
		return "Tab"
	}
	if len(key) == 1 {
		return strings.ToLower(key)
	}
	return key
}

// SortChords orders chords for stable output.
func SortChords(chords []Chord) {
	sort.Slice(chords, func(i, j int) bool {
		return chords[i].String() < chords[j].String()
	})
}
