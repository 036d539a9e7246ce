package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/infoyouth/smartnews/internal/config"
	"github.com/infoyouth/smartnews/internal/gemini"
	"github.com/infoyouth/smartnews/internal/news"
	"github.com/infoyouth/smartnews/internal/pipeline"
	"github.com/spf13/cobra"
)

// geminiKeyEnv names the environment variable holding the Gemini API key.
const geminiKeyEnv = "GEMINI_API_KEY"

var (
	processInput  string
	processOutput string
	processDays   int
	processLimit  int
)

func init() {
	processCmd.Flags().StringVar(&processInput, "input", pipeline.LatestFile, "File holding the fetched articles")
	processCmd.Flags().StringVar(&processOutput, "output", pipeline.FilteredFile, "File the selected articles are written to")
	processCmd.Flags().IntVar(&processDays, "days", 0, "Recency window in days (default from user config, then 1)")
	processCmd.Flags().IntVar(&processLimit, "limit", 0, "Max articles sent for analysis (default from user config, then 10)")
	rootCmd.AddCommand(processCmd)
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Select the most relevant recent articles with Gemini",
	Long: `Read fetched articles, keep those published within the recency window,
and ask Gemini to select the headlines most relevant to engineering
students and recent graduates. The selection is written as JSON for the
post command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey, err := geminiAPIKey()
		if err != nil {
			return err
		}

		config.Load()
		days := processDays
		if days <= 0 {
			days = config.GetInt("days", pipeline.DefaultDays)
		}
		limit := processLimit
		if limit <= 0 {
			limit = config.GetInt("limit", 10)
		}

		articles, err := news.LoadFile(processInput)
		if err != nil {
			return err
		}

		recent := news.Recent(articles, days, time.Now())
		if len(recent) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No articles published in the last %d day(s).\n", days)
			return nil
		}
		recent = news.TopN(recent, limit)

		client := gemini.NewClient(apiKey)
		selected, err := client.AnalyzeTitles(cmd.Context(), recent)
		if err != nil {
			return fmt.Errorf("analyzing titles: %w", err)
		}
		if len(selected) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Gemini selected no articles.")
			return nil
		}

		if err := news.Save(selected, processOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d filtered articles to %s.\n", len(selected), processOutput)
		return nil
	},
}

// geminiAPIKey resolves the Gemini API key from the environment.
func geminiAPIKey() (string, error) {
	key := os.Getenv(geminiKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s environment variable is not set", geminiKeyEnv)
	}
	return key, nil
}
