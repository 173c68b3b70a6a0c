package layout

import (
	"fmt"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// moveWindow relocates the leaf holding id one step in direction dir.
//
// The container owning the leaf first tries a local swap. When that is not
// possible the leaf is evicted and couldNotFocus is returned: the leaf is
// then detached from the subtree and each ancestor in turn offers to insert
// it next to the branch it came from. Ancestors whose axis does not accept
// dir keep their branch and pass the request further up.
func (c *Container) moveWindow(dir entity.Direction, id entity.WindowID) (outcome, error) {
	for i, child := range c.children {
		switch n := child.(type) {
		case *Leaf:
			if n.Window == id {
				return c.move(dir, i)
			}
		case *Container:
			res, err := n.moveWindow(dir, id)
			if err != nil {
				return res, err
			}
			if res == hasNotWindow {
				continue
			}
			switch len(n.children) {
			case 0:
				return res, fmt.Errorf("branch %d after move: %w", i, ErrEmptyContainer)
			case 1:
				c.children[i] = n.children[0]
			}
			if res == focusSucceeded {
				return res, nil
			}
			return c.insert(dir, NewLeaf(id), i)
		}
	}
	return hasNotWindow, nil
}

func (c *Container) move(dir entity.Direction, index int) (outcome, error) {
	children, res, err := moveChild(c.split, dir, index, c.children)
	c.children = children
	return res, err
}

func (c *Container) insert(dir entity.Direction, leaf *Leaf, index int) (outcome, error) {
	children, res, err := insertLeaf(c.split, dir, leaf, index, c.children)
	c.children = children
	return res, err
}

// splitFor picks the orientation of a new root created by a move in dir.
// next and prev follow the current root.
func splitFor(dir entity.Direction, current Split) Split {
	switch dir {
	case entity.DirUp, entity.DirDown:
		return Horizontal{}
	case entity.DirLeft, entity.DirRight:
		return Vertical{}
	default:
		return current
	}
}
