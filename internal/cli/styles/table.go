package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// BindingTableColumns returns columns for the key binding table.
func BindingTableColumns() []table.Column {
	return []table.Column{
		{Title: "Chord", Width: 20},
		{Title: "Action", Width: 36},
		{Title: "Target", Width: 10},
	}
}

// BindingRow is one key binding ready for display.
type BindingRow struct {
	Chord   string
	Action  string
	Focused bool // the action applies to the window under the chord
}

// ToRow converts to table.Row.
func (b BindingRow) ToRow() table.Row {
	target := "global"
	if b.Focused {
		target = "window"
	}
	return table.Row{b.Chord, b.Action, target}
}

// GeometryTableColumns returns columns for the window geometry table.
func GeometryTableColumns() []table.Column {
	return []table.Column{
		{Title: "Window", Width: 8},
		{Title: "X", Width: 6},
		{Title: "Y", Width: 6},
		{Title: "Width", Width: 7},
		{Title: "Height", Width: 7},
	}
}

// GeometryRow is the last geometry applied to a window.
type GeometryRow struct {
	Window uint32
	X, Y   int
	W, H   int
}

// ToRow converts to table.Row.
func (g GeometryRow) ToRow() table.Row {
	return table.Row{
		fmt.Sprintf("%d", g.Window),
		fmt.Sprintf("%d", g.X),
		fmt.Sprintf("%d", g.Y),
		fmt.Sprintf("%d", g.W),
		fmt.Sprintf("%d", g.H),
	}
}

// TableHeight fits a table to its rows, plus the header, within limit.
func TableHeight(rows, limit int) int {
	const header = 2
	return min(rows+header, limit)
}
