package layout

import (
	"fmt"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// outcome is the control signal passed up the recursive tree walks.
// It never leaves the package.
type outcome int

const (
	hasNotWindow outcome = iota
	couldNotFocus
	focusSucceeded
)

func (o outcome) String() string {
	switch o {
	case hasNotWindow:
		return "has_not_window"
	case couldNotFocus:
		return "could_not_focus"
	case focusSucceeded:
		return "focus_succeeded"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// step is how a direction relates to a split's main axis.
type step int

const (
	stepOrthogonal step = iota
	stepBackward
	stepForward
)

// Split arranges and navigates the children of a Container along one axis.
// Implementations are stateless.
type Split interface {
	// Kind names the orientation.
	Kind() SplitKind

	// Partition divides r into n shares along the main axis with gap between
	// neighbours. Each share gets (extent-(n-1)*gap)/n; the division remainder
	// is left unused after the last share.
	Partition(r entity.Rect, n, gap int) []entity.Rect

	step(dir entity.Direction) step
}

// SplitKind identifies a Split implementation.
type SplitKind int

const (
	// SplitVertical places children left to right.
	SplitVertical SplitKind = iota
	// SplitHorizontal places children top to bottom.
	SplitHorizontal
)

func (k SplitKind) String() string {
	if k == SplitHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Split returns the strategy for the kind.
func (k SplitKind) Split() Split {
	if k == SplitHorizontal {
		return Horizontal{}
	}
	return Vertical{}
}

// ParseSplitKind accepts "vertical"/"v" and "horizontal"/"h".
func ParseSplitKind(s string) (SplitKind, error) {
	switch s {
	case "vertical", "v", "vsplit":
		return SplitVertical, nil
	case "horizontal", "h", "hsplit":
		return SplitHorizontal, nil
	}
	return 0, fmt.Errorf("unknown split %q", s)
}

// Vertical arranges children left to right.
type Vertical struct{}

func (Vertical) Kind() SplitKind { return SplitVertical }

func (Vertical) Partition(r entity.Rect, n, gap int) []entity.Rect {
	if n <= 0 {
		return nil
	}
	width := share(r.W, n, gap)
	rects := make([]entity.Rect, n)
	x := r.X
	for i := range rects {
		rects[i] = entity.Rect{X: x, Y: r.Y, W: width, H: r.H}
		x += width + gap
	}
	return rects
}

func (Vertical) step(dir entity.Direction) step {
	switch dir {
	case entity.DirLeft, entity.DirPrev:
		return stepBackward
	case entity.DirRight, entity.DirNext:
		return stepForward
	default:
		return stepOrthogonal
	}
}

// Horizontal arranges children top to bottom.
type Horizontal struct{}

func (Horizontal) Kind() SplitKind { return SplitHorizontal }

func (Horizontal) Partition(r entity.Rect, n, gap int) []entity.Rect {
	if n <= 0 {
		return nil
	}
	height := share(r.H, n, gap)
	rects := make([]entity.Rect, n)
	y := r.Y
	for i := range rects {
		rects[i] = entity.Rect{X: r.X, Y: y, W: r.W, H: height}
		y += height + gap
	}
	return rects
}

func (Horizontal) step(dir entity.Direction) step {
	switch dir {
	case entity.DirUp, entity.DirPrev:
		return stepBackward
	case entity.DirDown, entity.DirNext:
		return stepForward
	default:
		return stepOrthogonal
	}
}

// share is the floor-divided extent of one child.
func share(extent, n, gap int) int {
	return (extent - (n-1)*gap) / n
}

// neighbour resolves the sibling a focus request lands on.
func neighbour(s Split, dir entity.Direction, index, count int) (int, outcome) {
	switch s.step(dir) {
	case stepBackward:
		if index == 0 {
			return index, couldNotFocus
		}
		return index - 1, focusSucceeded
	case stepForward:
		if index+1 >= count {
			return index, couldNotFocus
		}
		return index + 1, focusSucceeded
	default:
		return index, couldNotFocus
	}
}

// moveChild swaps the child at index with its neighbour in dir. Without such a
// neighbour, or when dir is orthogonal to the axis, the child is evicted and
// the caller owns it.
func moveChild(s Split, dir entity.Direction, index int, children []Node) ([]Node, outcome, error) {
	if len(children) == 0 {
		return children, couldNotFocus, ErrEmptyContainer
	}
	if index < 0 || index >= len(children) {
		return children, couldNotFocus, fmt.Errorf("move child %d of %d: %w", index, len(children), ErrIndexOutOfRange)
	}

	switch s.step(dir) {
	case stepBackward:
		if index > 0 {
			children[index], children[index-1] = children[index-1], children[index]
			return children, focusSucceeded, nil
		}
	case stepForward:
		if index+1 < len(children) {
			children[index], children[index+1] = children[index+1], children[index]
			return children, focusSucceeded, nil
		}
	}
	return removeAt(children, index), couldNotFocus, nil
}

// insertLeaf places leaf next to the child at index, before it for backward
// directions and after it for forward ones. Orthogonal directions leave the
// list untouched.
func insertLeaf(s Split, dir entity.Direction, leaf *Leaf, index int, children []Node) ([]Node, outcome, error) {
	st := s.step(dir)
	if st == stepOrthogonal {
		return children, couldNotFocus, nil
	}
	if index < 0 || index >= len(children) {
		return children, couldNotFocus, fmt.Errorf("insert at %d of %d: %w", index, len(children), ErrIndexOutOfRange)
	}
	at := index
	if st == stepForward {
		at = index + 1
	}
	return insertAt(children, at, leaf), focusSucceeded, nil
}

func removeAt(children []Node, index int) []Node {
	copy(children[index:], children[index+1:])
	children[len(children)-1] = nil
	return children[:len(children)-1]
}

func insertAt(children []Node, index int, n Node) []Node {
	children = append(children, nil)
	copy(children[index+1:], children[index:])
	children[index] = n
	return children
}
