package config

import (
	"fmt"
	"strings"

	"github.com/bnema/a11ytrack/internal/domain/entity"
	"github.com/bnema/a11ytrack/internal/logging"
)

// normalizeConfig trims and lowercases enum-like fields and fills empties
// with defaults.
func normalizeConfig(config *Config) {
	defaults := DefaultConfig()

	norm := func(s *string, fallback string) {
		*s = strings.ToLower(strings.TrimSpace(*s))
		if *s == "" {
			*s = fallback
		}
	}
	norm(&config.Appearance.ColorScheme, defaults.Appearance.ColorScheme)
	norm(&config.Appearance.Contrast, defaults.Appearance.Contrast)
	norm(&config.Appearance.ReducedMotion, defaults.Appearance.ReducedMotion)
	norm(&config.Logging.Level, defaults.Logging.Level)
	norm(&config.Logging.Format, defaults.Logging.Format)

	if config.Watch.PollInterval == 0 {
		config.Watch.PollInterval = defaults.Watch.PollInterval
	}
}

func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateWatch(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string

	if s := config.Appearance.ColorScheme; s != "default" {
		if _, ok := entity.ParseColorScheme(s); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.color_scheme must be one of: default, prefer-dark, prefer-light, dark, light (got: %s)", s))
		}
	}
	if s := config.Appearance.Contrast; s != "default" {
		if _, ok := entity.ParseContrast(s); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.contrast must be one of: default, more, less, no-preference (got: %s)", s))
		}
	}
	if s := config.Appearance.ReducedMotion; s != "default" {
		if _, ok := entity.ParseMotion(s); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.reduced_motion must be one of: default, reduce, no-preference (got: %s)", s))
		}
	}
	return validationErrors
}

func validateWatch(config *Config) []string {
	if config.Watch.PollInterval < minPollInterval {
		return []string{fmt.Sprintf("watch.poll_interval must be at least %s (got: %s)", minPollInterval, config.Watch.PollInterval)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, ok := logging.ParseLevel(config.Logging.Level); !ok {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	return validationErrors
}
