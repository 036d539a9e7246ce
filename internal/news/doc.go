// Package news fetches articles from the configured providers, filters them
// by recency, and persists them as JSON between pipeline stages.
package news
