package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/cli/styles"
)

const maxTableHeight = 40

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the configured key bindings",
	Long: `List every key binding after the modifier is applied and launcher
shortcuts are expanded. Window bindings act on the window that has the
keyboard focus; global bindings work anywhere.`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	bindings, err := app.Config.ResolveBindings()
	if err != nil {
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderError(err))
		return fmt.Errorf("invalid key bindings")
	}

	rows := make([]table.Row, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, styles.BindingRow{
			Chord:   b.Chord.String(),
			Action:  b.Action.String(),
			Focused: b.Action.TargetsWindow(),
		}.ToRow())
	}

	columns := styles.BindingTableColumns()
	tbl := styles.NewStyledTable(app.Theme, columns, rows, tableWidth(columns), styles.TableHeight(len(rows), maxTableHeight))
	tbl.Blur()

	fmt.Println()
	fmt.Printf("  %s %s\n\n", app.Theme.Highlight.Render(styles.IconKey), app.Theme.Title.Render("Key bindings"))
	fmt.Println(tbl.View())
	return nil
}

func tableWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}
