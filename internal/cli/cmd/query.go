package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/a11ytrack/internal/cli"
	"github.com/bnema/a11ytrack/internal/cli/styles"
)

var queryCmd = &cobra.Command{
	Use:   "query <media-query>...",
	Short: "Evaluate media queries against the desktop",
	Long: `Evaluate one or more media queries against the current desktop appearance.

Unknown or malformed queries never match and are shown as "not all".

Examples:
  a11ytrack query "(prefers-contrast: more)"
  a11ytrack query "(prefers-color-scheme: dark)" "(prefers-reduced-motion)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewAppearanceRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderQueries(evaluateQueries(app, args)))
	return nil
}

func evaluateQueries(app *cli.App, queries []string) []styles.QueryResult {
	results := make([]styles.QueryResult, 0, len(queries))
	for _, q := range queries {
		list := app.Environment.MatchMedia(q)
		results = append(results, styles.QueryResult{
			Input:   q,
			Media:   list.Media(),
			Matches: list.Matches(),
		})
	}
	return results
}
