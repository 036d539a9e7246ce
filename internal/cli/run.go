package cli

import (
	"os"

	"github.com/infoyouth/smartnews/internal/config"
	"github.com/infoyouth/smartnews/internal/discord"
	"github.com/infoyouth/smartnews/internal/gemini"
	"github.com/infoyouth/smartnews/internal/news"
	"github.com/infoyouth/smartnews/internal/newsconfig"
	"github.com/infoyouth/smartnews/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	runConfigPath string
	runDays       int
	runLimit      int
	runWebhook    string
	runNoPost     bool
)

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", newsconfig.DefaultPath, "Path to the source configuration file")
	runCmd.Flags().IntVar(&runDays, "days", 0, "Recency window in days (default from user config, then 1)")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "Max articles sent for analysis (default from user config, then 10)")
	runCmd.Flags().StringVar(&runWebhook, "webhook", "", "Discord webhook URL (default $"+discord.WebhookEnvVar+")")
	runCmd.Flags().BoolVar(&runNoPost, "no-post", false, "Run every stage but skip the Discord post")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full fetch, analyze, and post pipeline",
	Long: `Fetch headlines from every configured source, keep the recent ones, ask
Gemini to pick and enrich the most relevant articles, save each stage's
artifact, and post the result to Discord.

Posting is skipped when no webhook is configured or --no-post is set;
every other stage still runs and its files are written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey, err := geminiAPIKey()
		if err != nil {
			return err
		}

		cfg, err := newsconfig.Load(runConfigPath)
		if err != nil {
			return err
		}

		config.Load()
		days := runDays
		if days <= 0 {
			days = config.GetInt("days", pipeline.DefaultDays)
		}
		limit := runLimit
		if limit <= 0 {
			limit = config.GetInt("limit", cfg.Limit())
		}

		var poster *discord.Poster
		if !runNoPost {
			webhook := runWebhook
			if webhook == "" {
				webhook = os.Getenv(discord.WebhookEnvVar)
			}
			if webhook != "" {
				poster = discord.NewPoster(webhook)
			}
		}

		p := &pipeline.Pipeline{
			Fetcher: news.NewFetcher(cfg, news.WithWarnWriter(cmd.ErrOrStderr())),
			Gemini:  gemini.NewClient(apiKey),
			Poster:  poster,
			Days:    days,
			Limit:   limit,
			Out:     cmd.OutOrStdout(),
		}
		return p.Run(cmd.Context())
	},
}
