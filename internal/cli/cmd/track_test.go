package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/a11ytrack/internal/application/usecase"
	"github.com/bnema/a11ytrack/internal/cli"
	"github.com/bnema/a11ytrack/internal/infrastructure/appearance"
	"github.com/bnema/a11ytrack/internal/infrastructure/config"
)

const overridesOnly = `
[appearance]
color_scheme = "dark"
contrast = "more"

[sources]
portal = false
gsettings = false
env = false
`

func newTestApp(t *testing.T, toml string) *cli.App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))

	mgr, err := config.NewManagerForFile(path)
	require.NoError(t, err)

	app, err := cli.NewAppWithConfig(mgr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func newTrackCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "track"}
	registerTrackFlags(c)
	require.NoError(t, c.Flags().Parse(args))
	return c
}

// syncBuffer is a bytes.Buffer safe for the reporter goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestTrackOptions_FromConfig(t *testing.T) {
	cfg := config.TrackingConfig{PrefersContrast: true, ListenForChanges: true}

	opts, err := trackOptions(newTrackCommand(t), cfg)
	require.NoError(t, err)

	assert.Equal(t, usecase.TrackerOptions{PrefersContrast: true, ListenForChanges: true}, opts)
}

func TestTrackOptions_FlagsOverrideConfig(t *testing.T) {
	cfg := config.TrackingConfig{PrefersContrast: true, ListenForChanges: true}

	opts, err := trackOptions(newTrackCommand(t, "--contrast=false", "--color-scheme", "--listen=false"), cfg)
	require.NoError(t, err)

	assert.Equal(t, usecase.TrackerOptions{PrefersColorScheme: true}, opts)
}

func TestTrackOptions_All(t *testing.T) {
	opts, err := trackOptions(newTrackCommand(t, "--all"), config.TrackingConfig{})
	require.NoError(t, err)

	assert.True(t, opts.PrefersContrast)
	assert.True(t, opts.PrefersReducedMotion)
	assert.True(t, opts.PrefersColorScheme)
	assert.False(t, opts.ListenForChanges)
}

func TestTrack_SnapshotOnly(t *testing.T) {
	app := newTestApp(t, overridesOnly)
	var out syncBuffer

	opts := usecase.TrackerOptions{PrefersContrast: true, PrefersColorScheme: true}
	err := track(context.Background(), app, opts, time.Second, &out)
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, `"value": "(prefers-contrast: more)"`)
	assert.Contains(t, report, `"value": "(prefers-color-scheme: dark)"`)
	assert.Equal(t, 1, strings.Count(report, "prefersContrast"))
}

func TestTrack_UnsupportedEnvironment(t *testing.T) {
	app := newTestApp(t, overridesOnly)
	app.Environment.Close()

	err := track(context.Background(), app, usecase.TrackerOptions{PrefersContrast: true}, time.Second, &syncBuffer{})

	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrEnvironmentUnsupported)
}

func TestTrack_ListenReportsChanges(t *testing.T) {
	app := newTestApp(t, overridesOnly)
	var out syncBuffer

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := usecase.TrackerOptions{PrefersContrast: true, ListenForChanges: true}
	done := make(chan error, 1)
	go func() {
		done <- track(ctx, app, opts, 10*time.Millisecond, &out)
	}()

	assert.Eventually(t, func() bool {
		return strings.Count(out.String(), "prefersContrast") == 1
	}, time.Second, 5*time.Millisecond)

	app.Overrides.Update(appearance.Overrides{ColorScheme: "dark", Contrast: "less"})

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"value": "(prefers-contrast: less)",`+"\n    \"changed\": true")
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("track did not stop after cancel")
	}
}
