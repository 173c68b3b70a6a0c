package config

// Config represents the complete configuration for dumbwm.
type Config struct {
	// Layout controls tiling geometry.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout"`
	// Keybindings maps key chords to window manager actions.
	Keybindings KeybindingsConfig `mapstructure:"keybindings" toml:"keybindings"`
	// Launcher names the programs started by exec bindings.
	Launcher LauncherConfig `mapstructure:"launcher" toml:"launcher"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
}

// LayoutConfig controls tiling geometry.
type LayoutConfig struct {
	// Gaps is the spacing between sibling windows in pixels.
	Gaps int `mapstructure:"gaps" toml:"gaps"`
	// OuterGaps is the spacing between the screen edge and the tiled area.
	OuterGaps int `mapstructure:"outer_gaps" toml:"outer_gaps"`
	// DefaultSplit is the initial root orientation ("vertical" or "horizontal").
	DefaultSplit string `mapstructure:"default_split" toml:"default_split"`
}

// KeybindingsConfig maps chords to actions.
//
// Chords in Bindings are relative to Modifier: with modifier "mod4" the
// entry "shift+h" binds Mod4+Shift+h. Values are actions such as
// "focus left", "move up", "toggle_split", "kill", "exec terminal" or "quit".
type KeybindingsConfig struct {
	Modifier string            `mapstructure:"modifier" toml:"modifier"`
	Bindings map[string]string `mapstructure:"bindings" toml:"bindings"`
}

// LauncherConfig names the programs for the "exec terminal" and "exec menu"
// shortcuts.
type LauncherConfig struct {
	Terminal string `mapstructure:"terminal" toml:"terminal"`
	Menu     string `mapstructure:"menu" toml:"menu"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level"`
	Format        string `mapstructure:"format" toml:"format"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
}
