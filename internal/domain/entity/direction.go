package entity

import (
	"fmt"
	"strings"
)

// Direction is the argument of directional focus and move commands.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirNext
	DirPrev
)

var directionNames = map[Direction]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
	DirNext:  "next",
	DirPrev:  "prev",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection converts a config or CLI token into a Direction.
func ParseDirection(s string) (Direction, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == token {
			return d, nil
		}
	}
	switch token {
	case "previous", "backward":
		return DirPrev, nil
	case "forward":
		return DirNext, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Backward reports whether the direction places things before the reference
// point (up, left, prev).
func (d Direction) Backward() bool {
	return d == DirUp || d == DirLeft || d == DirPrev
}
