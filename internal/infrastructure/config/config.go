// Package config loads and watches the a11ytrack configuration file.
package config

import "time"

// Config represents the complete configuration for a11ytrack.
type Config struct {
	// Tracking selects which preference categories the tracker observes.
	Tracking TrackingConfig `mapstructure:"tracking" toml:"tracking" json:"tracking"`
	// Appearance holds explicit overrides that win over desktop settings.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// Sources enables or disables desktop settings backends.
	Sources SourcesConfig `mapstructure:"sources" toml:"sources" json:"sources"`
	// Watch controls how often desktop settings are polled for changes.
	Watch   WatchConfig   `mapstructure:"watch" toml:"watch" json:"watch"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// TrackingConfig mirrors the tracker options.
type TrackingConfig struct {
	PrefersContrast      bool `mapstructure:"prefers_contrast" toml:"prefers_contrast" json:"prefers_contrast"`
	PrefersReducedMotion bool `mapstructure:"prefers_reduced_motion" toml:"prefers_reduced_motion" json:"prefers_reduced_motion"`
	PrefersColorScheme   bool `mapstructure:"prefers_color_scheme" toml:"prefers_color_scheme" json:"prefers_color_scheme"`
	// ListenForChanges keeps reporting after the initial snapshot.
	ListenForChanges bool `mapstructure:"listen_for_changes" toml:"listen_for_changes" json:"listen_for_changes"`
}

// AppearanceConfig holds preference overrides. "default" means no override.
type AppearanceConfig struct {
	// ColorScheme: default, prefer-dark, prefer-light, dark, light
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light,enum=dark,enum=light"`
	// Contrast: default, more, less, no-preference
	Contrast string `mapstructure:"contrast" toml:"contrast" json:"contrast" jsonschema:"enum=default,enum=more,enum=less,enum=no-preference"`
	// ReducedMotion: default, reduce, no-preference
	ReducedMotion string `mapstructure:"reduced_motion" toml:"reduced_motion" json:"reduced_motion" jsonschema:"enum=default,enum=reduce,enum=no-preference"`
}

// SourcesConfig toggles the desktop settings backends.
type SourcesConfig struct {
	Portal    bool `mapstructure:"portal" toml:"portal" json:"portal"`
	Gsettings bool `mapstructure:"gsettings" toml:"gsettings" json:"gsettings"`
	Env       bool `mapstructure:"env" toml:"env" json:"env"`
}

// WatchConfig controls change polling.
type WatchConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval" toml:"poll_interval" json:"poll_interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}
