package entity

// ConfigKeyInfo is one row of `dumbwm config schema`.
type ConfigKeyInfo struct {
	Key         string   `json:"key"`     // dotted path, "layout.gaps"
	Type        string   `json:"type"`    // Go kind: int, string, bool
	Default     string   `json:"default"` // as it would be written in config.toml
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"` // accepted strings of an enum
	Range       string   `json:"range,omitempty"`  // numeric bound such as ">= 0"
	Section     string   `json:"section"`          // "Layout", "Keybindings", ...
}
