package news

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes articles to path as an indented JSON array.
func Save(articles []Article, path string) error {
	if articles == nil {
		articles = []Article{}
	}
	data, err := json.MarshalIndent(articles, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling articles: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a JSON array of articles written by an earlier stage.
func LoadFile(path string) ([]Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var articles []Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return articles, nil
}
