// Package cmd provides Cobra CLI commands for a11ytrack.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/a11ytrack/internal/cli"
	"github.com/bnema/a11ytrack/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "a11ytrack",
		Short: "Track desktop accessibility display preferences",
		Long: `a11ytrack observes the desktop's accessibility-related display preferences
and reports them as JSON.

Tracked preferences:
  - prefers-contrast (more, less, no-preference)
  - prefers-reduced-motion (reduce, no-preference)
  - prefers-color-scheme (dark, light)

Overrides in the [appearance] section of the config file always win.
Otherwise values come from the XDG desktop portal, GTK_THEME and gsettings,
in that order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema", "path":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
