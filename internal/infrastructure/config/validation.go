package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dumbwm/internal/domain/layout"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true,
	"error": true, "fatal": true, "panic": true, "disabled": true,
}

// validateConfig collects every problem in config into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.Gaps < 0 {
		validationErrors = append(validationErrors, "layout.gaps must be non-negative")
	}
	if config.Layout.OuterGaps < 0 {
		validationErrors = append(validationErrors, "layout.outer_gaps must be non-negative")
	}
	if _, err := layout.ParseSplitKind(config.Layout.DefaultSplit); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.default_split: %v", err))
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	if _, err := config.ResolveBindings(); err != nil {
		return strings.Split(err.Error(), "\n")
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" && !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	return validationErrors
}
