package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/a11ytrack/internal/cli"
	"github.com/bnema/a11ytrack/internal/cli/styles"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved desktop appearance",
	Long:  `Display each resolved preference, the source that provided it, and which sources are available.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewAppearanceRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderStatus(app.Environment.Refresh(), sourceStatuses(app)))
	return nil
}

func sourceStatuses(app *cli.App) []styles.SourceStatus {
	sources := app.Resolver.Sources()
	out := make([]styles.SourceStatus, 0, len(sources))
	for _, s := range sources {
		out = append(out, styles.SourceStatus{
			Name:      s.Name(),
			Priority:  s.Priority(),
			Available: s.Available(),
		})
	}
	return out
}
