package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/infoyouth/smartnews/internal/discord"
	"github.com/infoyouth/smartnews/internal/gemini"
	"github.com/infoyouth/smartnews/internal/news"
)

// Default file names for the artifacts passed between stages.
const (
	LatestFile   = "latest_news.json"
	FilteredFile = "filtered_news.json"
	OutputFile   = "output.txt"
)

// DefaultDays is the recency window applied before relevance analysis.
const DefaultDays = 1

// Pipeline runs the full fetch → filter → analyze → enrich → publish flow.
type Pipeline struct {
	Fetcher *news.Fetcher
	Gemini  *gemini.Client
	Poster  *discord.Poster // nil disables webhook posting

	Days  int // recency window in days; DefaultDays if zero
	Limit int // max articles sent for analysis; 0 means no cap

	LatestPath   string
	FilteredPath string
	OutputPath   string

	Out io.Writer        // progress output; os.Stdout if nil
	Now func() time.Time // clock; time.Now if nil
}

// Run executes the pipeline once. An empty fetch result is not an error:
// the run stops with a warning, matching a quiet news day.
func (p *Pipeline) Run(ctx context.Context) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	days := p.Days
	if days <= 0 {
		days = DefaultDays
	}

	fmt.Fprintln(out, "Fetching the latest news articles.")
	all, err := p.Fetcher.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetching news: %w", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No latest news found. Skipping analysis.")
		return nil
	}
	fmt.Fprintf(out, "Fetched %d articles.\n", len(all))

	if err := news.Save(all, p.latestPath()); err != nil {
		return fmt.Errorf("saving fetched news: %w", err)
	}
	fmt.Fprintf(out, "Saved fetched news to %s.\n", p.latestPath())

	recent := news.Recent(all, days, now())
	if len(recent) == 0 {
		fmt.Fprintf(out, "No articles published in the last %d day(s). Nothing to post.\n", days)
		return nil
	}
	if p.Limit > 0 {
		recent = news.TopN(recent, p.Limit)
	}
	fmt.Fprintf(out, "Analyzing %d recent articles.\n", len(recent))

	selected, err := p.Gemini.AnalyzeTitles(ctx, recent)
	if err != nil {
		return fmt.Errorf("analyzing titles: %w", err)
	}
	if len(selected) == 0 {
		fmt.Fprintln(out, "Gemini selected no articles. Nothing to post.")
		return nil
	}
	if err := news.Save(selected, p.filteredPath()); err != nil {
		return fmt.Errorf("saving filtered news: %w", err)
	}
	fmt.Fprintf(out, "Saved %d filtered articles to %s.\n", len(selected), p.filteredPath())

	enriched, err := p.Gemini.EnrichArticles(ctx, selected)
	if err != nil {
		return fmt.Errorf("enriching articles: %w", err)
	}

	content := discord.FormatOneLiner(enriched)
	if content == "" {
		fmt.Fprintln(out, "No postable articles after enrichment. Nothing to post.")
		return nil
	}
	if err := os.WriteFile(p.outputPath(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p.outputPath(), err)
	}
	fmt.Fprintf(out, "Discord-ready output written to %s.\n", p.outputPath())

	if p.Poster != nil {
		if err := p.Poster.Post(ctx, content); err != nil {
			return fmt.Errorf("posting to Discord: %w", err)
		}
		fmt.Fprintln(out, "Posted to Discord.")
	}
	return nil
}

func (p *Pipeline) latestPath() string {
	if p.LatestPath != "" {
		return p.LatestPath
	}
	return LatestFile
}

func (p *Pipeline) filteredPath() string {
	if p.FilteredPath != "" {
		return p.FilteredPath
	}
	return FilteredFile
}

func (p *Pipeline) outputPath() string {
	if p.OutputPath != "" {
		return p.OutputPath
	}
	return OutputFile
}
