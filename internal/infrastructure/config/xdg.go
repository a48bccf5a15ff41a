package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "a11ytrack"
	configFileName = "config.toml"
	dirPerm        = 0o755
	filePerm       = 0o644
)

// GetConfigDir returns the XDG config directory for a11ytrack.
// $XDG_CONFIG_HOME/a11ytrack (default: ~/.config/a11ytrack)
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path to the config file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
