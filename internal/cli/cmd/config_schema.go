package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/infrastructure/config"
)

var (
	schemaJSON       bool
	schemaJSONSchema bool
	schemaSection    string
)

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Describe every configuration key",
	Long: `List every configuration key with its type, default and accepted values.

Examples:
  dumbwm config schema
  dumbwm config schema --section layout
  dumbwm config schema --json
  dumbwm config schema --jsonschema > config.schema.json`,
	RunE: runConfigSchema,
}

func init() {
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "print the key list as JSON")
	configSchemaCmd.Flags().BoolVar(&schemaJSONSchema, "jsonschema", false, "print a JSON Schema for config.toml")
	configSchemaCmd.Flags().StringVar(&schemaSection, "section", "", "only show one section (layout, keybindings, launcher, logging)")
	configSchemaCmd.MarkFlagsMutuallyExclusive("json", "jsonschema")
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if schemaJSONSchema {
		data, err := config.JSONSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: schemaSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if schemaJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}

	fmt.Println(renderer.Render(out.Keys))
	return nil
}
