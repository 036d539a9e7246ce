package news

import "time"

// Article is one news item as returned by a provider's headlines endpoint.
type Article struct {
	Source      *SourceRef `json:"source,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt,omitempty"`
}

// SourceRef identifies the provider outlet an article came from.
type SourceRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// publishedAtLayouts are tried in order when parsing timestamps. Providers
// are not consistent: NewsAPI uses RFC 3339, some feeds drop the zone.
var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// PublishedTime parses the article's publication timestamp. The second
// return value reports whether a usable timestamp was present.
func (a Article) PublishedTime() (time.Time, bool) {
	if a.PublishedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedAtLayouts {
		if ts, err := time.Parse(layout, a.PublishedAt); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
