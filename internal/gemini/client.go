package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/infoyouth/smartnews/internal/news"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash-exp"
)

// EnrichedArticle is a selected article tagged with presentation metadata.
type EnrichedArticle struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Topic   string `json:"topic"`
	Emoji   string `json:"emoji"`
	Summary string `json:"summary"`
}

// Client sends prompts to the Gemini API and parses its JSON replies.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL overrides the API base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(cl *Client) {
		cl.baseURL = strings.TrimRight(u, "/")
	}
}

// WithModel selects a model other than the default.
func WithModel(model string) Option {
	return func(cl *Client) {
		cl.model = model
	}
}

// NewClient creates a Client with the given API key and options.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const analyzePrompt = `Analyze the provided list of titles and URLs and select the top 10 most ` +
	`relevant for engineering students and recent graduates, focusing on their ` +
	`career development, educational growth, and future opportunities. ` +
	`Only reply with your selection as a JSON array, with no explanation or additional text. ` +
	`Format: [{"title": "Short and Attractive Title", "url": "Original URL"}]` + "\n"

const enrichPrompt = `For each news article below, do the following:
- Assign a topic from [Space, AI, Politics, Health, Science, Tech, Other].
- Suggest an appropriate emoji for that topic.
- Write a concise 1-sentence summary.
Reply as a JSON list, where each item is:
{"title": "...", "url": "...", "topic": "...", "emoji": "...", "summary": "..."}
`

// AnalyzeTitles asks Gemini to select the most relevant articles. The reply
// carries only titles and URLs.
func (c *Client) AnalyzeTitles(ctx context.Context, articles []news.Article) ([]news.Article, error) {
	var selected []news.Article
	if err := c.generate(ctx, analyzePrompt+articleList(articles), &selected); err != nil {
		return nil, err
	}
	return selected, nil
}

// EnrichArticles asks Gemini to tag each article with topic, emoji, and summary.
func (c *Client) EnrichArticles(ctx context.Context, articles []news.Article) ([]EnrichedArticle, error) {
	var enriched []EnrichedArticle
	if err := c.generate(ctx, enrichPrompt+articleList(articles), &enriched); err != nil {
		return nil, err
	}
	return enriched, nil
}

func articleList(articles []news.Article) string {
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("Title: %s\nURL: %s", a.Title, a.URL))
	}
	return strings.Join(lines, "\n")
}

// generateContent wire types.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate sends a prompt and unmarshals the model's JSON reply into out.
func (c *Client) generate(ctx context.Context, prompt string, out interface{}) error {
	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Gemini API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("parsing Gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("Gemini response contains no candidates")
	}

	text := cleanReply(parsed.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("parsing JSON from Gemini reply: %w", err)
	}
	return nil
}

var fenceRe = regexp.MustCompile("```json|```")

// cleanReply strips Markdown code fences the model tends to wrap JSON in.
func cleanReply(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}
