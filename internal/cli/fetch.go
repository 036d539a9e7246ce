package cli

import (
	"fmt"

	"github.com/infoyouth/smartnews/internal/news"
	"github.com/infoyouth/smartnews/internal/newsconfig"
	"github.com/infoyouth/smartnews/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	fetchConfigPath string
	fetchOutput     string
	fetchSource     string
)

func init() {
	fetchCmd.Flags().StringVar(&fetchConfigPath, "config", newsconfig.DefaultPath, "Path to the source configuration file")
	fetchCmd.Flags().StringVar(&fetchOutput, "output", pipeline.LatestFile, "File the fetched articles are written to")
	fetchCmd.Flags().StringVar(&fetchSource, "source", "", "Fetch from a single named source instead of all")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the latest headlines from all configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newsconfig.Load(fetchConfigPath)
		if err != nil {
			return err
		}

		fetcher := news.NewFetcher(cfg, news.WithWarnWriter(cmd.ErrOrStderr()))

		var articles []news.Article
		if fetchSource != "" {
			articles, err = fetcher.FetchLatest(cmd.Context(), fetchSource)
		} else {
			articles, err = fetcher.FetchAll(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("fetching news: %w", err)
		}

		if len(articles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No articles fetched.")
			return nil
		}

		if err := news.Save(articles, fetchOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d articles to %s.\n", len(articles), fetchOutput)
		return nil
	},
}
