package layout

import "errors"

var (
	// ErrIndexOutOfRange means a child index did not come from a live traversal.
	ErrIndexOutOfRange = errors.New("layout: child index out of range")

	// ErrEmptyContainer means an operation reached a container with no children.
	ErrEmptyContainer = errors.New("layout: operation on empty container")

	// ErrSurfaceApplyFailed wraps errors returned by the Surface.
	// The tree structure is already updated when it is returned.
	ErrSurfaceApplyFailed = errors.New("layout: surface apply failed")
)
