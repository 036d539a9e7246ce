package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/infoyouth/smartnews/internal/newsconfig"
)

// topHeadlinesEndpoint is the endpoint template name every source must declare.
const topHeadlinesEndpoint = "top_headlines"

// Fetcher retrieves articles from the sources declared in the configuration.
type Fetcher struct {
	cfg        *newsconfig.Config
	httpClient *http.Client
	warn       io.Writer
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithWarnWriter redirects per-request warnings (default os.Stderr).
func WithWarnWriter(w io.Writer) FetcherOption {
	return func(f *Fetcher) {
		f.warn = w
	}
}

// NewFetcher creates a Fetcher over the given configuration.
func NewFetcher(cfg *newsconfig.Config, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		warn:       os.Stderr,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// headlinesResponse is the wire shape of a top-headlines reply.
type headlinesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// FetchTopHeadlines fetches one country/category combination from a source.
// Either country or category may be empty; empty parameters are omitted
// from the query.
func (f *Fetcher) FetchTopHeadlines(ctx context.Context, sourceName, country, category string) ([]Article, error) {
	src := f.cfg.Source(sourceName)
	if src == nil {
		return nil, fmt.Errorf("source not found: %s", sourceName)
	}

	endpoint, ok := src.Endpoint(topHeadlinesEndpoint, map[string]string{
		"country":  country,
		"category": category,
	})
	if !ok {
		return nil, fmt.Errorf("source %s declares no %s endpoint", sourceName, topHeadlinesEndpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	q := url.Values{}
	q.Set("apiKey", src.APIKey)
	if country != "" {
		q.Set("country", country)
	}
	if category != "" {
		q.Set("category", category)
	}
	if src.DefaultParams.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(src.DefaultParams.PageSize))
	}
	if src.DefaultParams.Language != "" {
		q.Set("language", src.DefaultParams.Language)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching headlines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source %s returned status %d", sourceName, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var parsed headlinesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing headlines JSON: %w", err)
	}
	return parsed.Articles, nil
}

// FetchLatest fetches every country/category combination a source declares
// and concatenates the results. Individual request failures are reported as
// warnings and skipped so one bad combination does not sink the whole run.
func (f *Fetcher) FetchLatest(ctx context.Context, sourceName string) ([]Article, error) {
	src := f.cfg.Source(sourceName)
	if src == nil {
		return nil, fmt.Errorf("source not found: %s", sourceName)
	}

	countries := src.AvailableCountries
	if len(countries) == 0 {
		countries = []string{""}
	}
	categories := src.AvailableCategories
	if len(categories) == 0 {
		categories = []string{""}
	}

	var all []Article
	for _, country := range countries {
		for _, category := range categories {
			articles, err := f.FetchTopHeadlines(ctx, sourceName, country, category)
			if err != nil {
				fmt.Fprintf(f.warn, "Warning: %s (country=%s, category=%s): %v\n",
					sourceName, country, category, err)
				continue
			}
			all = append(all, articles...)
		}
	}
	return all, nil
}

// FetchAll runs FetchLatest for every configured source.
func (f *Fetcher) FetchAll(ctx context.Context) ([]Article, error) {
	var all []Article
	for _, src := range f.cfg.Sources {
		articles, err := f.FetchLatest(ctx, src.Name)
		if err != nil {
			return nil, err
		}
		all = append(all, articles...)
	}
	return all, nil
}
