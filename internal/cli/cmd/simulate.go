package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/layout"
	"github.com/bnema/dumbwm/internal/infrastructure/surface"
)

var (
	simulateScreen  string
	simulateCols    int
	simulateVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [script]",
	Short: "Replay a layout script without a display",
	Long: `Replay a layout script against an in-memory screen and print the
resulting tree, window geometry and a preview. The script is read from the
file argument, or stdin when it is omitted or "-".

Script commands, one per line:
  add <id>             map a window
  remove <id>          unmap a window
  move <dir> <id>      move a window (up, down, left, right, next, prev)
  focus <dir> <id>     focus a neighbour
  toggle               flip the root split
  screen <W>x<H>       change the screen size
  gaps <inner> [outer] change the gaps

Layout settings come from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVar(&simulateScreen, "screen", "1920x1080", "screen size")
	simulateCmd.Flags().IntVar(&simulateCols, "cols", 64, "preview width in columns")
	simulateCmd.Flags().BoolVarP(&simulateVerbose, "verbose", "v", false, "print the tree after every step")
}

func runSimulate(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	theme := app.Theme

	var w, h int
	if _, err := fmt.Sscanf(simulateScreen, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return fmt.Errorf("invalid --screen %q", simulateScreen)
	}
	screen := entity.NewRect(0, 0, w, h)

	split, err := layout.ParseSplitKind(app.Config.Layout.DefaultSplit)
	if err != nil {
		return err
	}

	script, closeScript, err := openScript(args)
	if err != nil {
		return err
	}
	defer closeScript()

	recorder := surface.NewRecorder()
	windows := usecase.NewManageWindowsUseCase(recorder, screen, usecase.WindowSettings{
		Gaps:         app.Config.Layout.Gaps,
		OuterGaps:    app.Config.Layout.OuterGaps,
		DefaultSplit: split,
	})

	steps, err := usecase.NewReplayScriptUseCase(windows).Execute(app.Ctx(), script)
	for _, s := range steps {
		switch {
		case s.Err != nil:
			fmt.Printf("  %s %3d  %-24s %s\n", theme.ErrorStyle.Render(styles.IconX), s.Line, s.Command, theme.ErrorStyle.Render(s.Err.Error()))
		case simulateVerbose:
			fmt.Printf("  %s %3d  %-24s %s\n", theme.SuccessStyle.Render(styles.IconCheck), s.Line, s.Command, theme.Subtle.Render(s.Tree))
		}
	}
	if err != nil {
		return err
	}

	tree := windows.Tree()
	fmt.Printf("\n  %s %s\n\n", theme.Highlight.Render(styles.IconTree), theme.Title.Render(tree.String()))
	if tree.Empty() {
		return nil
	}

	frames := make(map[entity.WindowID]entity.Rect)
	rows := make([]table.Row, 0, len(tree.Windows()))
	for _, id := range tree.Windows() {
		r, ok := recorder.Geometry(id)
		if !ok {
			continue
		}
		frames[id] = r
		rows = append(rows, styles.GeometryRow{Window: uint32(id), X: r.X, Y: r.Y, W: r.W, H: r.H}.ToRow())
	}

	columns := styles.GeometryTableColumns()
	tbl := styles.NewStyledTable(theme, columns, rows, tableWidth(columns), styles.TableHeight(len(rows), maxTableHeight))
	tbl.Blur()
	fmt.Println(tbl.View())
	fmt.Println()
	fmt.Println(styles.NewLayoutRenderer(theme, simulateCols).Render(windows.ContentRect(), frames, recorder.Focused()))
	return nil
}

func openScript(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
