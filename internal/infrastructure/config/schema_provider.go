package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/invopop/jsonschema"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout      = "Layout"
	SectionKeybindings = "Keybindings"
	SectionLauncher    = "Launcher"
	SectionLogging     = "Logging"
)

// SchemaFileName sits next to config.toml for editors that understand it.
const SchemaFileName = "config.schema.json"

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 32)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getKeybindingKeys(defaults)...)
	keys = append(keys, p.getLauncherKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.gaps",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Layout.Gaps),
			Description: "Spacing between sibling windows in pixels",
			Range:       ">= 0",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.outer_gaps",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Layout.OuterGaps),
			Description: "Spacing between the screen edge and the tiled area",
			Range:       ">= 0",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.default_split",
			Type:        "string",
			Default:     defaults.Layout.DefaultSplit,
			Description: "Orientation of the root split at startup",
			Values:      []string{"vertical", "horizontal"},
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getKeybindingKeys(defaults *Config) []entity.ConfigKeyInfo {
	keys := []entity.ConfigKeyInfo{
		{
			Key:         "keybindings.modifier",
			Type:        "string",
			Default:     defaults.Keybindings.Modifier,
			Description: "Modifier prepended to every binding",
			Values:      []string{"mod4", "mod1", "ctrl", "shift"},
			Section:     SectionKeybindings,
		},
	}

	chords := make([]string, 0, len(defaults.Keybindings.Bindings))
	for chord := range defaults.Keybindings.Bindings {
		chords = append(chords, chord)
	}
	sort.Strings(chords)

	for _, chord := range chords {
		keys = append(keys, entity.ConfigKeyInfo{
			Key:         bindingsKey + "." + chord,
			Type:        "string",
			Default:     defaults.Keybindings.Bindings[chord],
			Description: "Action bound to modifier+" + chord + ` ("none" disables it)`,
			Section:     SectionKeybindings,
		})
	}
	return keys
}

func (*SchemaProvider) getLauncherKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "launcher.terminal",
			Type:        "string",
			Default:     defaults.Launcher.Terminal,
			Description: `Program started by "exec terminal"`,
			Section:     SectionLauncher,
		},
		{
			Key:         "launcher.menu",
			Type:        "string",
			Default:     defaults.Launcher.Menu,
			Description: `Program started by "exec menu"`,
			Section:     SectionLauncher,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Console log format",
			Values:      []string{"text", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     defaults.Logging.LogDir,
			Description: "Directory for rotated log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.EnableFileLog),
			Description: "Write a JSON log file while the window manager runs",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxAge),
			Description: "Days to keep rotated log files",
			Range:       ">= 0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxSizeMB),
			Description: "Size in megabytes at which the log file rotates",
			Range:       ">= 0",
			Section:     SectionLogging,
		},
	}
}

// JSONSchema reflects Config into a JSON Schema keyed by the TOML names.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/dumbwm/config.schema.json"
	schema.Title = "dumbwm Configuration"
	schema.Description = "Configuration schema for dumbwm, a dumb tiling window manager for X11"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the JSON Schema next to configFile and returns
// its path.
func GenerateSchemaFile(configFile string) (string, error) {
	data, err := JSONSchema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(filepath.Dir(configFile), SchemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("write schema file: %w", err)
	}
	return schemaFile, nil
}
