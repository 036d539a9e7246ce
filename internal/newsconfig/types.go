package newsconfig

import "strings"

// DefaultFilterLimit is the number of articles kept per source when the
// config does not set filter_limit.
const DefaultFilterLimit = 10

// Config is the parsed configs/api_config.json.
type Config struct {
	Sources     []Source `json:"sources"`
	FilterLimit int      `json:"filter_limit,omitempty"`
}

// Source describes one news provider.
type Source struct {
	Name                string            `json:"name"`
	BaseURL             string            `json:"base_url"`
	Endpoints           map[string]string `json:"endpoints"`
	APIKeyEnv           string            `json:"api_key_env,omitempty"`
	DefaultParams       Params            `json:"default_params"`
	AvailableCountries  []string          `json:"available_countries,omitempty"`
	AvailableCategories []string          `json:"available_categories,omitempty"`

	// APIKey is resolved from APIKeyEnv at load time.
	APIKey string `json:"-"`
}

// Params holds the default query parameters sent with every request.
type Params struct {
	PageSize int    `json:"pageSize"`
	Language string `json:"language"`
}

// Source returns the source with the given name, or nil if not declared.
func (c *Config) Source(name string) *Source {
	for i := range c.Sources {
		if c.Sources[i].Name == name {
			return &c.Sources[i]
		}
	}
	return nil
}

// Limit returns the configured filter_limit or DefaultFilterLimit.
func (c *Config) Limit() int {
	if c.FilterLimit > 0 {
		return c.FilterLimit
	}
	return DefaultFilterLimit
}

// Endpoint builds the URL for the named endpoint template. The template may
// reference <BASE_URL> and any variable passed in vars (e.g. <country>).
func (s *Source) Endpoint(name string, vars map[string]string) (string, bool) {
	tmpl, ok := s.Endpoints[name]
	if !ok {
		return "", false
	}
	url := strings.ReplaceAll(tmpl, "<BASE_URL>", s.BaseURL)
	for key, value := range vars {
		url = strings.ReplaceAll(url, "<"+key+">", value)
	}
	return url, true
}
