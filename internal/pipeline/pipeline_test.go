package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/infoyouth/smartnews/internal/discord"
	"github.com/infoyouth/smartnews/internal/gemini"
	"github.com/infoyouth/smartnews/internal/news"
	"github.com/infoyouth/smartnews/internal/newsconfig"
)

var testNow = time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

func newsServer(t *testing.T, articlesJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status": "ok", "articles": %s}`, articlesJSON)
	}))
}

func geminiServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding Gemini request: %v", err)
		}
		prompt := req.Contents[0].Parts[0].Text

		var text string
		if strings.Contains(prompt, "emoji") {
			text = `[{"title": "Rocket launch", "url": "https://example.com/r", "topic": "Space", "emoji": "🚀", "summary": "A rocket launched."}]`
		} else {
			text = `[{"title": "Rocket launch", "url": "https://example.com/r"}]`
		}
		reply := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		if err := json.NewEncoder(w).Encode(reply); err != nil {
			t.Errorf("encoding Gemini reply: %v", err)
		}
	}))
}

func pipelineConfig(baseURL string) *newsconfig.Config {
	return &newsconfig.Config{
		Sources: []newsconfig.Source{
			{
				Name:      "NewsAPI",
				BaseURL:   baseURL,
				Endpoints: map[string]string{"top_headlines": "<BASE_URL>/top-headlines"},
				APIKey:    "test-key",
			},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	fresh := testNow.Add(-2 * time.Hour).Format(time.RFC3339)
	stale := testNow.Add(-72 * time.Hour).Format(time.RFC3339)
	newsSrv := newsServer(t, fmt.Sprintf(`[
		{"title": "Rocket launch", "url": "https://example.com/r", "publishedAt": %q},
		{"title": "Old story", "url": "https://example.com/o", "publishedAt": %q}
	]`, fresh, stale))
	defer newsSrv.Close()

	geminiSrv := geminiServer(t)
	defer geminiSrv.Close()

	var posted string
	discordSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decoding webhook payload: %v", err)
		}
		posted = p.Content
		w.WriteHeader(http.StatusNoContent)
	}))
	defer discordSrv.Close()

	dir := t.TempDir()
	var out bytes.Buffer
	p := &Pipeline{
		Fetcher:      news.NewFetcher(pipelineConfig(newsSrv.URL)),
		Gemini:       gemini.NewClient("test-key", gemini.WithBaseURL(geminiSrv.URL)),
		Poster:       discord.NewPoster(discordSrv.URL),
		Days:         1,
		Limit:        10,
		LatestPath:   filepath.Join(dir, LatestFile),
		FilteredPath: filepath.Join(dir, FilteredFile),
		OutputPath:   filepath.Join(dir, OutputFile),
		Out:          &out,
		Now:          func() time.Time { return testNow },
	}

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	latest, err := news.LoadFile(p.LatestPath)
	if err != nil {
		t.Fatalf("loading latest: %v", err)
	}
	if len(latest) != 2 {
		t.Errorf("latest has %d articles, want 2", len(latest))
	}

	filtered, err := news.LoadFile(p.FilteredPath)
	if err != nil {
		t.Fatalf("loading filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Title != "Rocket launch" {
		t.Errorf("filtered = %+v, want the rocket article", filtered)
	}

	output, err := os.ReadFile(p.OutputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "🚀 [Rocket launch](https://example.com/r)"
	if string(output) != want {
		t.Errorf("output = %q, want %q", output, want)
	}
	if posted != want {
		t.Errorf("posted = %q, want %q", posted, want)
	}
	if !strings.Contains(out.String(), "Posted to Discord.") {
		t.Errorf("progress output missing post confirmation:\n%s", out.String())
	}
}

func TestRunNoArticles(t *testing.T) {
	newsSrv := newsServer(t, `[]`)
	defer newsSrv.Close()

	dir := t.TempDir()
	var out bytes.Buffer
	p := &Pipeline{
		Fetcher:    news.NewFetcher(pipelineConfig(newsSrv.URL)),
		Gemini:     gemini.NewClient("unused"),
		LatestPath: filepath.Join(dir, LatestFile),
		Out:        &out,
		Now:        func() time.Time { return testNow },
	}

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "No latest news found") {
		t.Errorf("expected empty-fetch warning, got:\n%s", out.String())
	}
	if _, err := os.Stat(p.LatestPath); !os.IsNotExist(err) {
		t.Error("latest file should not be written when nothing was fetched")
	}
}

func TestRunNothingRecent(t *testing.T) {
	stale := testNow.Add(-10 * 24 * time.Hour).Format(time.RFC3339)
	newsSrv := newsServer(t, fmt.Sprintf(`[{"title": "Old", "url": "https://example.com/o", "publishedAt": %q}]`, stale))
	defer newsSrv.Close()

	dir := t.TempDir()
	var out bytes.Buffer
	p := &Pipeline{
		Fetcher:    news.NewFetcher(pipelineConfig(newsSrv.URL)),
		Gemini:     gemini.NewClient("unused"),
		Days:       1,
		LatestPath: filepath.Join(dir, LatestFile),
		Out:        &out,
		Now:        func() time.Time { return testNow },
	}

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "No articles published in the last 1 day(s)") {
		t.Errorf("expected recency warning, got:\n%s", out.String())
	}
	// The fetched articles are still persisted for inspection.
	if _, err := os.Stat(p.LatestPath); err != nil {
		t.Errorf("latest file should exist: %v", err)
	}
}
