package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WebhookEnvVar names the environment variable holding the webhook URL.
const WebhookEnvVar = "DISCORD_WEBHOOK_URL"

const defaultUsername = "Youth Innovations"

// Poster sends formatted content to a Discord channel webhook.
type Poster struct {
	webhookURL string
	username   string
	httpClient *http.Client
}

// PosterOption configures a Poster.
type PosterOption func(*Poster)

// WithUsername overrides the display name used for posts.
func WithUsername(name string) PosterOption {
	return func(p *Poster) {
		if name != "" {
			p.username = name
		}
	}
}

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) PosterOption {
	return func(p *Poster) {
		p.httpClient = c
	}
}

// NewPoster creates a Poster for the given webhook URL.
func NewPoster(webhookURL string, opts ...PosterOption) *Poster {
	p := &Poster{
		webhookURL: webhookURL,
		username:   defaultUsername,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// payload is the webhook message body.
type payload struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// Post sends content as a single webhook message.
func (p *Poster) Post(ctx context.Context, content string) error {
	if !strings.HasPrefix(p.webhookURL, "http://") && !strings.HasPrefix(p.webhookURL, "https://") {
		return fmt.Errorf("invalid or missing webhook URL: %q", p.webhookURL)
	}
	if content == "" {
		return fmt.Errorf("refusing to post empty content")
	}

	body, err := json.Marshal(payload{Username: p.username, Content: content})
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to Discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("Discord webhook returned status %d", resp.StatusCode)
	}
	return nil
}
