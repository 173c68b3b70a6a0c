package layout

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// focusWindow walks the subtree looking for id. The container that owns the
// match, or the nearest ancestor whose axis accepts dir, focuses the
// neighbouring branch. The child lists are never modified.
func (c *Container) focusWindow(ctx context.Context, s Surface, dir entity.Direction, id entity.WindowID) (outcome, error) {
	for i, child := range c.children {
		switch n := child.(type) {
		case *Leaf:
			if n.Window == id {
				return c.focusFrom(ctx, s, dir, i)
			}
		case *Container:
			res, err := n.focusWindow(ctx, s, dir, id)
			if err != nil {
				return res, err
			}
			switch res {
			case focusSucceeded:
				return res, nil
			case couldNotFocus:
				return c.focusFrom(ctx, s, dir, i)
			}
		}
	}
	return hasNotWindow, nil
}

// focusFrom focuses the sibling of the child at index in direction dir.
func (c *Container) focusFrom(ctx context.Context, s Surface, dir entity.Direction, index int) (outcome, error) {
	target, res := neighbour(c.split, dir, index, len(c.children))
	if res != focusSucceeded {
		return res, nil
	}
	if err := c.children[target].focusAny(ctx, s); err != nil {
		return focusSucceeded, err
	}
	return focusSucceeded, nil
}
