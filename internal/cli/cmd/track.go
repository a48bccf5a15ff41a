package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/bnema/a11ytrack/internal/application/usecase"
	"github.com/bnema/a11ytrack/internal/cli"
	"github.com/bnema/a11ytrack/internal/infrastructure/config"
	"github.com/bnema/a11ytrack/internal/logging"
)

const (
	flagContrast      = "contrast"
	flagReducedMotion = "reduced-motion"
	flagColorScheme   = "color-scheme"
	flagAll           = "all"
	flagListen        = "listen"
	flagInterval      = "interval"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Report display preferences as JSON",
	Long: `Take a snapshot of the selected display preferences and print it as JSON.

With --listen, keep running and print a new report every time one of the
tracked preferences changes. Stop with Ctrl+C.

Flags that are not given fall back to the [tracking] section of the config.

Examples:
  a11ytrack track --all
  a11ytrack track --contrast --listen
  a11ytrack track --color-scheme --listen --interval 500ms`,
	Args: cobra.NoArgs,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	registerTrackFlags(trackCmd)
}

func registerTrackFlags(c *cobra.Command) {
	flags := c.Flags()
	flags.Bool(flagContrast, false, "track prefers-contrast")
	flags.Bool(flagReducedMotion, false, "track prefers-reduced-motion")
	flags.Bool(flagColorScheme, false, "track prefers-color-scheme")
	flags.BoolP(flagAll, "a", false, "track every preference")
	flags.BoolP(flagListen, "l", false, "keep reporting changes until interrupted")
	flags.Duration(flagInterval, 0, "desktop settings poll interval (default from config)")
}

func runTrack(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	cfg := app.Config.Get()
	opts, err := trackOptions(cmd, cfg.Tracking)
	if err != nil {
		return err
	}
	interval, err := cmd.Flags().GetDuration(flagInterval)
	if err != nil {
		return err
	}
	if interval <= 0 {
		interval = cfg.Watch.PollInterval
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, unix.SIGTERM)
	defer stop()

	return track(app.Context(ctx), app, opts, interval, cmd.OutOrStdout())
}

// trackOptions merges the tracking config with the flags the user set.
func trackOptions(cmd *cobra.Command, cfg config.TrackingConfig) (usecase.TrackerOptions, error) {
	partial := usecase.PartialTrackerOptions{
		PrefersContrast:      boolPtr(cfg.PrefersContrast),
		PrefersReducedMotion: boolPtr(cfg.PrefersReducedMotion),
		PrefersColorScheme:   boolPtr(cfg.PrefersColorScheme),
		ListenForChanges:     boolPtr(cfg.ListenForChanges),
	}

	flags := cmd.Flags()
	override := func(name string, dst **bool) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return fmt.Errorf("read --%s: %w", name, err)
		}
		*dst = boolPtr(v)
		return nil
	}

	if err := override(flagContrast, &partial.PrefersContrast); err != nil {
		return usecase.TrackerOptions{}, err
	}
	if err := override(flagReducedMotion, &partial.PrefersReducedMotion); err != nil {
		return usecase.TrackerOptions{}, err
	}
	if err := override(flagColorScheme, &partial.PrefersColorScheme); err != nil {
		return usecase.TrackerOptions{}, err
	}
	if err := override(flagListen, &partial.ListenForChanges); err != nil {
		return usecase.TrackerOptions{}, err
	}

	all, err := flags.GetBool(flagAll)
	if err != nil {
		return usecase.TrackerOptions{}, fmt.Errorf("read --%s: %w", flagAll, err)
	}
	if all {
		partial.PrefersContrast = boolPtr(true)
		partial.PrefersReducedMotion = boolPtr(true)
		partial.PrefersColorScheme = boolPtr(true)
	}

	return usecase.MergeTrackerOptions(partial), nil
}

// track reports once and, when listening, keeps reporting until ctx ends.
func track(ctx context.Context, app *cli.App, opts usecase.TrackerOptions, interval time.Duration, out io.Writer) error {
	ctx = logging.WithComponent(ctx, "track")
	log := logging.FromContext(ctx)

	reporter := func(report string) {
		fmt.Fprintln(out, report)
	}

	tracker, err := usecase.NewTracker(reporter, app.Environment, opts)
	if err != nil {
		return fmt.Errorf("create tracker: %w", err)
	}
	if err := tracker.Track(ctx); err != nil {
		return fmt.Errorf("track preferences: %w", err)
	}
	defer tracker.StopTracking()

	if !opts.ListenForChanges {
		return nil
	}

	log.Info().Dur("interval", interval).Int("subscriptions", tracker.Subscriptions()).Msg("listening for preference changes")

	changes := app.Config.Watch()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Environment.Watch(gctx, interval)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case cfg := <-changes:
				log.Debug().Msg("config reloaded, re-evaluating overrides")
				app.ApplyConfig(cfg)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("watch preferences: %w", err)
	}
	log.Debug().Msg("stopped tracking")
	return nil
}

func boolPtr(v bool) *bool {
	return &v
}
