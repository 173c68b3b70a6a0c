package layout

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// Tree is the root of the layout. It is the only mutable layout state a
// window manager holds.
type Tree struct {
	root    *Container
	surface Surface
	gap     int
	bounds  entity.Rect
}

// Option configures a Tree.
type Option func(*Tree)

// WithGap sets the spacing between sibling windows.
func WithGap(gap int) Option {
	return func(t *Tree) {
		t.gap = gap
	}
}

// WithSplit sets the orientation of the initial root.
func WithSplit(kind SplitKind) Option {
	return func(t *Tree) {
		t.root.split = kind.Split()
	}
}

// WithRoot starts the tree from an existing container.
func WithRoot(root *Container) Option {
	return func(t *Tree) {
		if root != nil {
			t.root = root
		}
	}
}

// NewTree creates an empty tree that applies geometry and focus through s.
func NewTree(s Surface, opts ...Option) *Tree {
	t := &Tree{
		root:    NewContainer(Vertical{}),
		surface: s,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root exposes the root container, mostly for inspection.
func (t *Tree) Root() *Container { return t.root }

// Gap returns the spacing between siblings.
func (t *Tree) Gap() int { return t.gap }

// SetGap changes the spacing used by the next Resize.
func (t *Tree) SetGap(gap int) { t.gap = gap }

// Bounds returns the rectangle of the last Resize.
func (t *Tree) Bounds() entity.Rect { return t.bounds }

// Empty reports whether no window is managed.
func (t *Tree) Empty() bool { return len(t.root.children) == 0 }

// HasWindow reports whether id is managed.
func (t *Tree) HasWindow(id entity.WindowID) bool { return t.root.hasWindow(id) }

// Windows lists managed windows in depth-first order.
func (t *Tree) Windows() []entity.WindowID { return t.root.Windows() }

func (t *Tree) String() string { return t.root.String() }

// AddLeaf appends a newly mapped window to the root. A window that is
// already managed is left where it is and false is returned.
func (t *Tree) AddLeaf(id entity.WindowID) bool {
	if t.root.hasWindow(id) {
		return false
	}
	t.root.Add(NewLeaf(id))
	return true
}

// RemoveWindow drops id from the tree and reports whether the tree is now
// empty. Removing an unknown window only reports emptiness.
func (t *Tree) RemoveWindow(id entity.WindowID) bool {
	empty := t.root.RemoveWindow(id)
	t.flattenRoot()
	return empty
}

// MoveWindow relocates id one step in dir, restructuring the tree as
// needed. Moving an unknown window is a no-op. The caller re-applies
// geometry with Resize afterwards.
func (t *Tree) MoveWindow(dir entity.Direction, id entity.WindowID) error {
	res, err := t.root.moveWindow(dir, id)
	if err != nil {
		return err
	}
	if res == couldNotFocus {
		t.splitRoot(dir, id)
	}
	t.flattenRoot()
	return nil
}

// splitRoot re-homes a leaf that escalated past the root: the old root
// becomes one side of a new root and the leaf the other.
func (t *Tree) splitRoot(dir entity.Direction, id entity.WindowID) {
	old := t.root
	leaf := NewLeaf(id)

	if len(old.children) == 0 {
		// The leaf was the only window; put it back.
		old.children = append(old.children, leaf)
		return
	}

	var rest Node = old
	if len(old.children) == 1 {
		rest = old.children[0]
	}

	root := NewContainer(splitFor(dir, old.split))
	if dir.Backward() {
		root.children = []Node{leaf, rest}
	} else {
		root.children = []Node{rest, leaf}
	}
	t.root = root
}

// flattenRoot replaces a root holding a single container by that container.
func (t *Tree) flattenRoot() {
	for len(t.root.children) == 1 {
		inner, ok := t.root.children[0].(*Container)
		if !ok {
			return
		}
		t.root = inner
	}
}

// FocusWindow moves input focus from id to its neighbour in dir. Requests
// that find no neighbour anywhere up to the root are ignored.
func (t *Tree) FocusWindow(ctx context.Context, dir entity.Direction, id entity.WindowID) error {
	_, err := t.root.focusWindow(ctx, t.surface, dir, id)
	return err
}

// FocusAny focuses the first window of the tree, if any.
func (t *Tree) FocusAny(ctx context.Context) error {
	return t.root.focusAny(ctx, t.surface)
}

// Resize lays the whole tree out inside r and remembers r for Relayout.
func (t *Tree) Resize(ctx context.Context, r entity.Rect) error {
	t.bounds = r
	return t.root.resize(ctx, t.surface, r, t.gap)
}

// Relayout repeats the last Resize.
func (t *Tree) Relayout(ctx context.Context) error {
	return t.root.resize(ctx, t.surface, t.bounds, t.gap)
}

// ToggleRootOrientation swaps the root between Vertical and Horizontal and
// lays the tree out again.
func (t *Tree) ToggleRootOrientation(ctx context.Context) error {
	if t.root.split.Kind() == SplitVertical {
		t.root.split = Horizontal{}
	} else {
		t.root.split = Vertical{}
	}
	return t.Relayout(ctx)
}
