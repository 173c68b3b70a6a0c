package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/dumbwm/internal/application/port"
)

// bindingsKey is compared as one key; its entries are user data.
const bindingsKey = "keybindings.bindings"

// Migrator implements port.ConfigMigrator for one config file.
type Migrator struct {
	configFile string
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
}

// NewMigrator creates a Migrator for configFile.
func NewMigrator(configFile string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()
	v.SetDefault(bindingsKey, DefaultBindings())

	return &Migrator{
		configFile:   configFile,
		defaultViper: v,
	}
}

// CheckMigration compares the user file against the defaults.
// Returns nil if no migration is needed.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	// A missing file is created with all defaults on first run.
	if _, statErr := os.Stat(m.configFile); os.IsNotExist(statErr) {
		return nil, nil
	}

	userKeys, err := m.getUserConfigKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	defaultKeys := m.getAllDefaultKeys()
	defaultSet := make(map[string]bool, len(defaultKeys))
	for _, k := range defaultKeys {
		defaultSet[k] = true
	}

	missing := findUnmatchedKeys(defaultKeys, userKeys)

	userList := make([]string, 0, len(userKeys))
	for k := range userKeys {
		userList = append(userList, k)
	}
	unknown := findUnmatchedKeys(userList, defaultSet)

	result := &port.MigrationResult{
		MissingKeys: missing,
		UnknownKeys: unknown,
		ConfigFile:  m.configFile,
	}
	if !result.Pending() {
		return nil, nil
	}
	return result, nil
}

// Migrate rewrites the user's config file with every missing default filled
// in. User values are kept; unknown keys are dropped.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil || result == nil {
		return nil, err
	}

	userViper := viper.New()
	userViper.SetConfigFile(m.configFile)
	userViper.SetConfigType("toml")

	mgr := &Manager{viper: userViper}
	mgr.setDefaults()

	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := userViper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("fix the config before migrating: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return nil, err
	}
	return result.MissingKeys, nil
}

// GetKeyInfo returns detailed information about a config key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return port.KeyInfo{
			Key:          key,
			Type:         "unknown",
			DefaultValue: "unknown",
		}
	}

	return port.KeyInfo{
		Key:          key,
		Type:         getTypeName(value),
		DefaultValue: formatValue(value),
	}
}

// getAllDefaultKeys returns all keys from the default configuration.
func (m *Migrator) getAllDefaultKeys() []string {
	seen := make(map[string]bool)
	keys := make([]string, 0)
	for _, key := range m.defaultViper.AllKeys() {
		if strings.HasPrefix(key, bindingsKey+".") {
			key = bindingsKey
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// getUserConfigKeys parses the user's TOML file and returns all defined keys.
func (m *Migrator) getUserConfigKeys() (map[string]bool, error) {
	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]any
	if err := toml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenMap(rawConfig, "", keys)
	return keys, nil
}

// flattenMap recursively flattens a nested map to lowercase dot-notation keys.
func flattenMap(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}

		if nested, ok := v.(map[string]any); ok && key != bindingsKey {
			flattenMap(nested, key, keys)
			continue
		}
		keys[key] = true
	}
}

// findUnmatchedKeys returns the keys of want with no related key in have.
func findUnmatchedKeys(want []string, have map[string]bool) []string {
	unmatched := make([]string, 0)
	for _, key := range want {
		if !keyOrRelatedExists(key, have) {
			unmatched = append(unmatched, key)
		}
	}
	sort.Strings(unmatched)
	return unmatched
}

// keyOrRelatedExists checks if a key, any parent, or any child keys exist in the map.
func keyOrRelatedExists(key string, keys map[string]bool) bool {
	if keys[key] {
		return true
	}

	parts := strings.Split(key, ".")
	for i := len(parts) - 1; i > 0; i-- {
		if keys[strings.Join(parts[:i], ".")] {
			return true
		}
	}

	keyPrefix := key + "."
	for other := range keys {
		if strings.HasPrefix(other, keyPrefix) {
			return true
		}
	}
	return false
}

// getTypeName returns a human-readable type name for a value.
func getTypeName(value any) string {
	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "list"
	case reflect.Map:
		return "map"
	default:
		return t.String()
	}
}

// formatValue returns a human-readable string representation of a value.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		if v == "" {
			return `""`
		}
		const maxStringLen = 50
		if len(v) > maxStringLen {
			return fmt.Sprintf("%q...", v[:maxStringLen-3])
		}
		return fmt.Sprintf("%q", v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() == 0 {
			return "[]"
		}
		return fmt.Sprintf("[%d items]", rv.Len())
	case reflect.Map:
		if rv.Len() == 0 {
			return "{}"
		}
		return fmt.Sprintf("{%d entries}", rv.Len())
	default:
		return fmt.Sprintf("%v", value)
	}
}
