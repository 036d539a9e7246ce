package discord

import (
	"fmt"
	"strings"

	"github.com/infoyouth/smartnews/internal/gemini"
)

const (
	// Discord rejects messages over 2000 characters; stay under it with
	// room for the truncation marker.
	maxContentLength = 1900

	defaultEmoji     = "📰"
	truncationMarker = "\n... (truncated)"
)

// FormatOneLiner renders one Markdown line per article: the topic emoji
// followed by the title linked to the original URL. Articles missing a
// title or URL are skipped. The result is capped at the webhook limit.
func FormatOneLiner(items []gemini.EnrichedArticle) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item.Title == "" || item.URL == "" {
			continue
		}
		emoji := item.Emoji
		if emoji == "" {
			emoji = defaultEmoji
		}
		lines = append(lines, fmt.Sprintf("%s [%s](%s)", emoji, item.Title, item.URL))
	}
	return truncate(strings.Join(lines, "\n"))
}

func truncate(content string) string {
	if len(content) <= maxContentLength {
		return content
	}
	// Cut on a rune boundary so an emoji is never split mid-sequence.
	runes := []rune(content)
	limit := maxContentLength - len(truncationMarker)
	for len(string(runes)) > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + truncationMarker
}
