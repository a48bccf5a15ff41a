// Package cli wires the a11ytrack command-line application.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/a11ytrack/internal/cli/styles"
	"github.com/bnema/a11ytrack/internal/domain/build"
	"github.com/bnema/a11ytrack/internal/infrastructure/appearance"
	"github.com/bnema/a11ytrack/internal/infrastructure/config"
	"github.com/bnema/a11ytrack/internal/infrastructure/mediaquery"
	"github.com/bnema/a11ytrack/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Logger    zerolog.Logger

	Overrides   *appearance.ConfigSource
	Resolver    *appearance.Resolver
	Environment *mediaquery.Environment
}

// NewApp loads the config from the XDG directory and builds the app.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	return NewAppWithConfig(mgr)
}

// NewAppWithConfig builds the app from an unloaded config manager.
func NewAppWithConfig(mgr *config.Manager) (*App, error) {
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Format)
	overrides := appearance.NewConfigSource(OverridesFromConfig(cfg))
	resolver := BuildResolver(cfg, overrides)

	return &App{
		Config:      mgr,
		Theme:       styles.NewTheme(),
		Logger:      logger,
		Overrides:   overrides,
		Resolver:    resolver,
		Environment: mediaquery.NewEnvironment(resolver),
	}, nil
}

// OverridesFromConfig extracts appearance overrides from the config.
func OverridesFromConfig(cfg *config.Config) appearance.Overrides {
	return appearance.Overrides{
		ColorScheme:   cfg.Appearance.ColorScheme,
		Contrast:      cfg.Appearance.Contrast,
		ReducedMotion: cfg.Appearance.ReducedMotion,
	}
}

// BuildResolver registers the config overrides and every enabled source.
func BuildResolver(cfg *config.Config, overrides *appearance.ConfigSource) *appearance.Resolver {
	resolver := appearance.NewResolver(overrides)
	if cfg.Sources.Portal {
		resolver.RegisterSource(appearance.NewPortalSource())
	}
	if cfg.Sources.Env {
		resolver.RegisterSource(appearance.NewEnvSource())
	}
	if cfg.Sources.Gsettings {
		resolver.RegisterSource(appearance.NewGsettingsSource())
	}
	return resolver
}

// Context returns ctx carrying the app logger.
func (a *App) Context(ctx context.Context) context.Context {
	return logging.WithContext(ctx, a.Logger)
}

// ApplyConfig swaps appearance overrides after a config reload and
// re-evaluates the environment.
func (a *App) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.Overrides.Update(OverridesFromConfig(cfg))
	a.Environment.Refresh()
}

// Close releases the media environment.
func (a *App) Close() error {
	if a.Environment != nil {
		a.Environment.Close()
	}
	return nil
}
