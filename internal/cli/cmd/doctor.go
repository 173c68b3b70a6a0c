package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/infrastructure/launcher"
	"github.com/bnema/dumbwm/internal/infrastructure/x11"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that dumbwm can run on this display",
	Long: `Doctor checks the prerequisites for running the window manager:

- the configuration file loads and validates
- the X display is reachable
- no other window manager holds the display
- the terminal and menu programs are on $PATH

Examples:
  dumbwm doctor
  dumbwm doctor --display :1`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	uc := usecase.NewCheckEnvironmentUseCase(x11.NewProbe(), launcher.New())
	out, err := uc.Execute(app.Ctx(), usecase.CheckEnvironmentInput{
		Display: displayName,
		Programs: []usecase.ProgramRequirement{
			{Label: "Terminal", Command: cfg.Launcher.Terminal},
			{Label: "Menu", Command: cfg.Launcher.Menu},
		},
	})
	if err != nil {
		return err
	}

	report := styles.DoctorReport{
		OverallOK:  out.OK && app.LoadErr == nil,
		ConfigFile: app.Manager.GetConfigFile(),
		ConfigErr:  app.LoadErr,
		Checks:     make([]styles.DoctorCheck, 0, len(out.Checks)),
	}
	for _, c := range out.Checks {
		report.Checks = append(report.Checks, styles.DoctorCheck{
			Name:   c.Name,
			Detail: c.Detail,
			Status: doctorStatus(c.Status),
		})
	}

	fmt.Println(styles.NewDoctorRenderer(app.Theme).Render(report))

	if !report.OverallOK {
		return fmt.Errorf("environment checks failed")
	}
	return nil
}

func doctorStatus(s usecase.CheckStatus) styles.DoctorCheckStatus {
	switch s {
	case usecase.CheckWarning:
		return styles.DoctorWarning
	case usecase.CheckFailed:
		return styles.DoctorFailed
	default:
		return styles.DoctorOK
	}
}
