package config

import "time"

const (
	defaultPollInterval = 2 * time.Second
	minPollInterval     = 100 * time.Millisecond
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tracking: TrackingConfig{
			PrefersContrast:      false,
			PrefersReducedMotion: false,
			PrefersColorScheme:   false,
			ListenForChanges:     false,
		},
		Appearance: AppearanceConfig{
			ColorScheme:   "default",
			Contrast:      "default",
			ReducedMotion: "default",
		},
		Sources: SourcesConfig{
			Portal:    true,
			Gsettings: true,
			Env:       true,
		},
		Watch: WatchConfig{
			PollInterval: defaultPollInterval,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
