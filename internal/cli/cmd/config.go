package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, check, print, reset and edit the dumbwm config file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file",
	Long:  `Load the config file, validate layout, logging and key bindings, and report every problem found.`,
	RunE:  runConfigCheck,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration dumbwm would use, with defaults and DUMBWM_* environment overrides applied.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long:  `Write the default configuration. An existing file is only replaced after confirmation.`,
	RunE:  runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Long:  `Open the config file in $VISUAL or $EDITOR, then validate the result.`,
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configCheckCmd, configShowCmd, configInitCmd, configEditCmd)
	configInitCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "overwrite without confirmation")
}

func newMigrateUseCase(configFile string) *usecase.MigrateConfigUseCase {
	return usecase.NewMigrateConfigUseCase(config.NewMigrator(configFile))
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	fmt.Println(app.Manager.GetConfigFile())
	return nil
}

func runConfigCheck(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	configFile := app.Manager.GetConfigFile()

	if app.LoadErr != nil {
		fmt.Println(renderer.RenderPath(configFile))
		fmt.Println(renderer.RenderError(app.LoadErr))
		return fmt.Errorf("invalid config")
	}

	bindings, err := app.Config.ResolveBindings()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return fmt.Errorf("invalid config")
	}
	fmt.Println(renderer.RenderValid(configFile, len(bindings)))

	migration, err := newMigrateUseCase(configFile).Check(app.Ctx(), usecase.CheckConfigMigrationInput{})
	if err == nil && len(migration.MissingKeys) > 0 {
		fmt.Println(renderer.RenderMigrateHint(len(migration.MissingKeys)))
	}
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return config.EncodeConfig(os.Stdout, app.Config)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	configFile := app.Manager.GetConfigFile()

	if _, err := os.Stat(configFile); err == nil && !configYes {
		fmt.Println(renderer.RenderPath(configFile))
		ok, err := styles.Confirm(app.Theme, "Replace the existing config with the defaults?")
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			fmt.Println(renderer.RenderKept(configFile))
			return nil
		}
	}

	if err := app.Manager.Save(config.DefaultConfig()); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderCreated(configFile))

	schemaFile, err := config.GenerateSchemaFile(configFile)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderSchemaWritten(schemaFile))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	configFile := app.Manager.GetConfigFile()

	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}

	editor := preferredEditor()
	fmt.Println(renderer.RenderOpening(configFile, editor))

	c := exec.Command(editor, configFile)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("run %s: %w", editor, err)
	}

	if err := app.Manager.Load(); err != nil {
		fmt.Println(renderer.RenderError(err))
		return fmt.Errorf("invalid config")
	}
	bindings, _ := app.Manager.Get().ResolveBindings()
	fmt.Println(renderer.RenderValid(configFile, len(bindings)))
	return nil
}

func preferredEditor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if e := os.Getenv(env); e != "" {
			return e
		}
	}
	return "vi"
}
