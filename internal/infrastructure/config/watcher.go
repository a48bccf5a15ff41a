package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/a11ytrack/internal/logging"
)

// Watch starts watching the config file and returns a channel carrying the
// latest valid config after each change. Only the newest pending config is
// kept. Repeated calls return the same channel.
func (m *Manager) Watch() <-chan *Config {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.changes != nil {
		return m.changes
	}
	m.changes = make(chan *Config, 1)

	m.viper.OnConfigChange(m.handleConfigEvent)
	m.viper.WatchConfig()
	return m.changes
}

func (m *Manager) handleConfigEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("failed to re-read config")
		return
	}
	config, err := m.decode()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid config change")
		return
	}
	m.config = config

	// Drop a stale config nobody consumed yet.
	select {
	case <-m.changes:
	default:
	}
	m.changes <- config
}
