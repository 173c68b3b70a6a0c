// Package surface holds display-less SurfaceController implementations.
package surface

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// Op names a recorded surface call.
type Op string

const (
	OpGeometry Op = "geometry"
	OpRaise    Op = "raise"
	OpFocus    Op = "focus"
)

// Call is one recorded request.
type Call struct {
	Op     Op
	Window entity.WindowID
	Rect   entity.Rect
}

func (c Call) String() string {
	if c.Op == OpGeometry {
		return fmt.Sprintf("%s %d %s", c.Op, c.Window, c.Rect)
	}
	return fmt.Sprintf("%s %d", c.Op, c.Window)
}

// Recorder is an in-memory surface. It keeps the last geometry of every
// window, the focused window and the stacking order.
type Recorder struct {
	mu       sync.Mutex
	calls    []Call
	geometry map[entity.WindowID]entity.Rect
	stack    []entity.WindowID
	focused  entity.WindowID
	failures map[entity.WindowID]error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		geometry: make(map[entity.WindowID]entity.Rect),
		failures: make(map[entity.WindowID]error),
	}
}

// FailFor makes every later call for id return err. A nil err clears it.
func (r *Recorder) FailFor(id entity.WindowID, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.failures, id)
		return
	}
	r.failures[id] = err
}

func (r *Recorder) record(c Call) error {
	r.calls = append(r.calls, c)
	return r.failures[c.Window]
}

// ApplyGeometry records the new rectangle of a window.
func (r *Recorder) ApplyGeometry(_ context.Context, id entity.WindowID, rect entity.Rect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(Call{Op: OpGeometry, Window: id, Rect: rect}); err != nil {
		return err
	}
	r.geometry[id] = rect
	return nil
}

// Raise moves a window to the top of the recorded stacking order.
func (r *Recorder) Raise(_ context.Context, id entity.WindowID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(Call{Op: OpRaise, Window: id}); err != nil {
		return err
	}
	for i, w := range r.stack {
		if w == id {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			break
		}
	}
	r.stack = append(r.stack, id)
	return nil
}

// SetFocus records the focused window.
func (r *Recorder) SetFocus(_ context.Context, id entity.WindowID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(Call{Op: OpFocus, Window: id}); err != nil {
		return err
	}
	r.focused = id
	return nil
}

// Forget drops everything known about a window, as if it was destroyed.
func (r *Recorder) Forget(id entity.WindowID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.geometry, id)
	for i, w := range r.stack {
		if w == id {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			break
		}
	}
	if r.focused == id {
		r.focused = 0
	}
}

// Calls returns a copy of every recorded call in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Reset clears the call log but keeps window state.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Geometry returns the last rectangle applied to id.
func (r *Recorder) Geometry(id entity.WindowID) (entity.Rect, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rect, ok := r.geometry[id]
	return rect, ok
}

// Windows lists every window with a recorded geometry, sorted by id.
func (r *Recorder) Windows() []entity.WindowID {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]entity.WindowID, 0, len(r.geometry))
	for id := range r.geometry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Focused returns the focused window, zero when none.
func (r *Recorder) Focused() entity.WindowID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.focused
}

// Top returns the topmost raised window, zero when none.
func (r *Recorder) Top() entity.WindowID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stack) == 0 {
		return 0
	}
	return r.stack[len(r.stack)-1]
}
