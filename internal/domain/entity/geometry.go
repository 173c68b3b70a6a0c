// Package entity defines the domain values shared by the layout engine and its hosts.
package entity

import "fmt"

// WindowID is the opaque handle of a managed window.
// The host guarantees it is unique for as long as the window is mapped.
type WindowID uint32

// Rect is an axis-aligned rectangle in screen coordinates.
// W and H may go negative when gaps exceed the available space; callers
// decide how to present such a rectangle.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// NewRect builds a rectangle from its origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Inset shrinks the rectangle by n on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}
