package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	changes    chan *Config
}

// NewManager creates a configuration manager for the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(filepath.Join(configDir, configFileName))
}

// NewManagerForFile creates a configuration manager reading the given file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// Set up environment variable support
	// (e.g., A11YTRACK_TRACKING_LISTEN_FOR_CHANGES, A11YTRACK_WATCH_POLL_INTERVAL).
	v.SetEnvPrefix("A11YTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "A11YTRACK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind A11YTRACK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "A11YTRACK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind A11YTRACK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// decode unmarshals, normalizes and validates what viper has read.
func (m *Manager) decode() (*Config, error) {
	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (m *Manager) readConfigFile() error {
	if _, statErr := os.Stat(m.configFile); errors.Is(statErr, os.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

// createDefaultConfig writes the defaults registered on viper to the config file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := m.viper.SafeWriteConfigAs(m.configFile); err != nil {
		return err
	}
	return os.Chmod(m.configFile, filePerm)
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// GetConfigFile returns the path of the config file in use.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setTrackingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setSourcesDefaults(defaults)
	m.setWatchDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setTrackingDefaults(defaults *Config) {
	m.viper.SetDefault("tracking.prefers_contrast", defaults.Tracking.PrefersContrast)
	m.viper.SetDefault("tracking.prefers_reduced_motion", defaults.Tracking.PrefersReducedMotion)
	m.viper.SetDefault("tracking.prefers_color_scheme", defaults.Tracking.PrefersColorScheme)
	m.viper.SetDefault("tracking.listen_for_changes", defaults.Tracking.ListenForChanges)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
	m.viper.SetDefault("appearance.contrast", defaults.Appearance.Contrast)
	m.viper.SetDefault("appearance.reduced_motion", defaults.Appearance.ReducedMotion)
}

func (m *Manager) setSourcesDefaults(defaults *Config) {
	m.viper.SetDefault("sources.portal", defaults.Sources.Portal)
	m.viper.SetDefault("sources.gsettings", defaults.Sources.Gsettings)
	m.viper.SetDefault("sources.env", defaults.Sources.Env)
}

func (m *Manager) setWatchDefaults(defaults *Config) {
	m.viper.SetDefault("watch.poll_interval", defaults.Watch.PollInterval.String())
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
