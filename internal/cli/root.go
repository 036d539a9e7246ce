package cli

import (
	"fmt"
	"os"

	"github.com/infoyouth/smartnews/internal/branding"
	"github.com/infoyouth/smartnews/internal/config"
	"github.com/infoyouth/smartnews/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` fetches headlines from the configured news APIs, narrows
them down to fresh and relevant articles with Gemini, and publishes the
result as Discord-ready Markdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip the banner for commands whose output is consumed verbatim.
		name := cmd.Name()
		if name == "scaffold" || name == "version" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
