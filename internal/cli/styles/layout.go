package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// LayoutRenderer draws window geometry as a scaled character map.
type LayoutRenderer struct {
	theme *Theme
	cols  int
}

// NewLayoutRenderer creates a renderer that maps the screen onto cols columns.
func NewLayoutRenderer(theme *Theme, cols int) *LayoutRenderer {
	if cols < 8 {
		cols = 8
	}
	return &LayoutRenderer{theme: theme, cols: cols}
}

// Render draws every frame inside screen. The focused window gets a double edge.
func (r *LayoutRenderer) Render(screen entity.Rect, frames map[entity.WindowID]entity.Rect, focused entity.WindowID) string {
	if screen.Empty() {
		return r.theme.Subtle.Render("(no screen)")
	}
	// Terminal cells are roughly twice as tall as wide.
	rows := max(screen.H*r.cols/screen.W/2, 4)
	grid := newCharGrid(r.cols, rows)

	ids := make([]entity.WindowID, 0, len(frames))
	for id := range frames {
		ids = append(ids, id)
	}
	// Focused frame last so its edges win.
	sort.Slice(ids, func(i, j int) bool {
		if (ids[i] == focused) != (ids[j] == focused) {
			return ids[j] == focused
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		f := frames[id]
		x0 := (f.X - screen.X) * r.cols / screen.W
		x1 := (f.X+f.W-screen.X)*r.cols/screen.W - 1
		y0 := (f.Y - screen.Y) * rows / screen.H
		y1 := (f.Y+f.H-screen.Y)*rows/screen.H - 1
		grid.box(x0, y0, x1, y1, id == focused)
		grid.label((x0+x1)/2, (y0+y1)/2, fmt.Sprintf("%d", id))
	}

	return r.theme.Frame.Render(grid.String())
}

type charGrid struct {
	w, h  int
	cells [][]rune
}

func newCharGrid(w, h int) *charGrid {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", w))
	}
	return &charGrid{w: w, h: h, cells: cells}
}

func (g *charGrid) set(x, y int, c rune) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = c
}

func (g *charGrid) box(x0, y0, x1, y1 int, focused bool) {
	if x1 < x0 || y1 < y0 {
		return
	}
	horiz, vert, corner := '-', '|', '+'
	if focused {
		horiz, vert, corner = '=', '‖', '#'
	}
	for x := x0; x <= x1; x++ {
		g.set(x, y0, horiz)
		g.set(x, y1, horiz)
	}
	for y := y0; y <= y1; y++ {
		g.set(x0, y, vert)
		g.set(x1, y, vert)
	}
	g.set(x0, y0, corner)
	g.set(x1, y0, corner)
	g.set(x0, y1, corner)
	g.set(x1, y1, corner)
}

func (g *charGrid) label(cx, cy int, text string) {
	start := cx - len(text)/2
	for i, c := range text {
		g.set(start+i, cy, c)
	}
}

func (g *charGrid) String() string {
	lines := make([]string, g.h)
	for y, row := range g.cells {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
