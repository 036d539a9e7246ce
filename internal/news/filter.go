package news

import (
	"sort"
	"time"
)

// Recent returns the articles published within the last days before now.
// Articles without a parseable timestamp are dropped: an undated article
// cannot be shown to be fresh.
func Recent(articles []Article, days int, now time.Time) []Article {
	threshold := now.Add(-time.Duration(days) * 24 * time.Hour)
	var recent []Article
	for _, a := range articles {
		ts, ok := a.PublishedTime()
		if !ok {
			continue
		}
		if ts.After(threshold) {
			recent = append(recent, a)
		}
	}
	return recent
}

// TopN returns the n newest articles. Articles without a parseable
// timestamp sort as older than any dated article but keep their original
// relative order; when no article has a timestamp at all, the provider's
// order is preserved.
func TopN(articles []Article, n int) []Article {
	if n <= 0 || len(articles) == 0 {
		return nil
	}

	ranked := make([]Article, len(articles))
	copy(ranked, articles)

	sort.SliceStable(ranked, func(i, j int) bool {
		ti, iOK := ranked[i].PublishedTime()
		tj, jOK := ranked[j].PublishedTime()
		switch {
		case iOK && jOK:
			return ti.After(tj)
		case iOK:
			return true
		default:
			return false
		}
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
