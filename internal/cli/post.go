package cli

import (
	"fmt"
	"os"

	"github.com/infoyouth/smartnews/internal/discord"
	"github.com/infoyouth/smartnews/internal/gemini"
	"github.com/infoyouth/smartnews/internal/news"
	"github.com/infoyouth/smartnews/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	postInput    string
	postOutput   string
	postWebhook  string
	postUsername string
	postDryRun   bool
)

func init() {
	postCmd.Flags().StringVar(&postInput, "input", pipeline.FilteredFile, "File holding the filtered articles")
	postCmd.Flags().StringVar(&postOutput, "output", pipeline.OutputFile, "File the formatted message is written to")
	postCmd.Flags().StringVar(&postWebhook, "webhook", "", "Discord webhook URL (default $"+discord.WebhookEnvVar+")")
	postCmd.Flags().StringVar(&postUsername, "username", "", "Display name used for the webhook post")
	postCmd.Flags().BoolVar(&postDryRun, "dry-run", false, "Format and save the message without posting it")
	rootCmd.AddCommand(postCmd)
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Enrich filtered articles and publish them to Discord",
	Long: `Ask Gemini for a topic, emoji, and summary per filtered article, render
the result as one Markdown line per article, save it, and send it to the
Discord webhook. With --dry-run the message is saved and previewed but
never sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey, err := geminiAPIKey()
		if err != nil {
			return err
		}

		webhook := postWebhook
		if webhook == "" {
			webhook = os.Getenv(discord.WebhookEnvVar)
		}
		if webhook == "" && !postDryRun {
			return fmt.Errorf("no webhook URL: pass --webhook or set %s", discord.WebhookEnvVar)
		}

		articles, err := news.LoadFile(postInput)
		if err != nil {
			return err
		}
		if len(articles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No filtered articles to post.")
			return nil
		}

		client := gemini.NewClient(apiKey)
		enriched, err := client.EnrichArticles(cmd.Context(), articles)
		if err != nil {
			return fmt.Errorf("enriching articles: %w", err)
		}

		content := discord.FormatOneLiner(enriched)
		if content == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No postable articles after enrichment.")
			return nil
		}

		if err := os.WriteFile(postOutput, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", postOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Discord-ready output written to %s.\n", postOutput)

		if postDryRun {
			fmt.Fprintln(cmd.OutOrStdout(), "Dry run, not posting. Message preview:")
			fmt.Fprintln(cmd.OutOrStdout(), preview(content, 300))
			return nil
		}

		poster := discord.NewPoster(webhook, discord.WithUsername(postUsername))
		if err := poster.Post(cmd.Context(), content); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Posted to Discord.")
		return nil
	},
}

// preview returns the first n runes of s, marking any cut.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
