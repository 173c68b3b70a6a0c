package layout

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// Container is an ordered list of child nodes arranged by a Split.
// It owns its children; nodes are never shared between containers.
type Container struct {
	split    Split
	children []Node
}

// NewContainer builds a container. A nil split defaults to Vertical.
func NewContainer(split Split, children ...Node) *Container {
	if split == nil {
		split = Vertical{}
	}
	return &Container{split: split, children: children}
}

// Split returns the active strategy.
func (c *Container) Split() Split { return c.split }

// SetSplit replaces the active strategy.
func (c *Container) SetSplit(s Split) {
	if s != nil {
		c.split = s
	}
}

// Len returns the number of direct children.
func (c *Container) Len() int { return len(c.children) }

// Children returns a copy of the direct children.
func (c *Container) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// Add appends a node to the end of the child list.
func (c *Container) Add(n Node) {
	c.children = append(c.children, n)
}

// Resize partitions r among the children and recurses. Every child is
// visited even when the surface rejects one of them; the failures are joined.
func (c *Container) Resize(ctx context.Context, s Surface, r entity.Rect, gap int) error {
	return c.resize(ctx, s, r, gap)
}

func (c *Container) resize(ctx context.Context, s Surface, r entity.Rect, gap int) error {
	if len(c.children) == 0 {
		return nil
	}
	rects := c.split.Partition(r, len(c.children), gap)
	var errs []error
	for i, child := range c.children {
		if err := child.resize(ctx, s, rects[i], gap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RemoveWindow drops the leaf holding id from the subtree. Containers left
// empty are dropped and containers left with one child are replaced by it.
// It reports whether c itself ended up empty.
func (c *Container) RemoveWindow(id entity.WindowID) bool {
	kept := c.children[:0]
	for _, child := range c.children {
		switch n := child.(type) {
		case *Leaf:
			if n.Window == id {
				continue
			}
		case *Container:
			if n.RemoveWindow(id) {
				continue
			}
			if len(n.children) == 1 {
				child = n.children[0]
			}
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(c.children); i++ {
		c.children[i] = nil
	}
	c.children = kept
	return len(c.children) == 0
}

// HasWindow reports whether id is anywhere in the subtree.
func (c *Container) HasWindow(id entity.WindowID) bool {
	return c.hasWindow(id)
}

func (c *Container) hasWindow(id entity.WindowID) bool {
	for _, child := range c.children {
		if child.hasWindow(id) {
			return true
		}
	}
	return false
}

// FocusAny focuses the first leaf of the subtree. It is a no-op on an empty
// container.
func (c *Container) FocusAny(ctx context.Context, s Surface) error {
	return c.focusAny(ctx, s)
}

func (c *Container) focusAny(ctx context.Context, s Surface) error {
	if len(c.children) == 0 {
		return nil
	}
	return c.children[0].focusAny(ctx, s)
}

// Windows lists the window handles of the subtree in depth-first order.
func (c *Container) Windows() []entity.WindowID {
	return c.appendWindows(nil)
}

func (c *Container) appendWindows(dst []entity.WindowID) []entity.WindowID {
	for _, child := range c.children {
		dst = child.appendWindows(dst)
	}
	return dst
}

// String renders the subtree compactly, e.g. "V[1 H[2 3]]".
func (c *Container) String() string {
	var b strings.Builder
	c.writeTo(&b)
	return b.String()
}

func (c *Container) writeTo(b *strings.Builder) {
	if c.split.Kind() == SplitHorizontal {
		b.WriteString("H[")
	} else {
		b.WriteString("V[")
	}
	for i, child := range c.children {
		if i > 0 {
			b.WriteByte(' ')
		}
		child.writeTo(b)
	}
	b.WriteByte(']')
}
