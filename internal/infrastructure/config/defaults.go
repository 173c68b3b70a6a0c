package config

// Default configuration constants
const (
	// Layout defaults
	defaultGaps         = 10 // pixels
	defaultOuterGaps    = 10 // pixels
	defaultSplit        = "vertical"
	defaultModifier     = "mod4"
	defaultTerminal     = "st"
	defaultMenu         = "dmenu_run"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultMaxLogAgeDay = 7  // days
	defaultMaxLogSizeMB = 10 // megabytes
)

// DefaultBindings returns the stock key bindings, relative to the modifier.
func DefaultBindings() map[string]string {
	return map[string]string{
		"h":       "focus left",
		"j":       "focus down",
		"k":       "focus up",
		"l":       "focus right",
		"shift+h": "move left",
		"shift+j": "move down",
		"shift+k": "move up",
		"shift+l": "move right",
		"shift+q": "kill",
		"e":       "toggle_split",
		"shift+e": "quit",
		"return":  "exec terminal",
		"space":   "exec menu",
	}
}

// DefaultConfig returns the default configuration values for dumbwm.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Gaps:         defaultGaps,
			OuterGaps:    defaultOuterGaps,
			DefaultSplit: defaultSplit,
		},
		Keybindings: KeybindingsConfig{
			Modifier: defaultModifier,
			Bindings: DefaultBindings(),
		},
		Launcher: LauncherConfig{
			Terminal: defaultTerminal,
			Menu:     defaultMenu,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxAge:        defaultMaxLogAgeDay,
			MaxSizeMB:     defaultMaxLogSizeMB,
		},
	}
}

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}
