package news

import (
	"path/filepath"
	"testing"
	"time"
)

var now = time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

func stamped(title string, ts time.Time) Article {
	return Article{
		Title:       title,
		URL:         "https://example.com/" + title,
		PublishedAt: ts.Format(time.RFC3339),
	}
}

func TestRecent(t *testing.T) {
	articles := []Article{
		stamped("fresh", now.Add(-2*time.Hour)),
		stamped("stale", now.Add(-5*24*time.Hour)),
		{Title: "undated", URL: "https://example.com/undated"},
		{Title: "garbage", URL: "https://example.com/garbage", PublishedAt: "not-a-date"},
	}

	recent := Recent(articles, 1, now)
	if len(recent) != 1 {
		t.Fatalf("got %d recent articles, want 1", len(recent))
	}
	if recent[0].Title != "fresh" {
		t.Errorf("Title = %q, want %q", recent[0].Title, "fresh")
	}
}

func TestTopNOrdersNewestFirst(t *testing.T) {
	articles := []Article{
		stamped("old", now.Add(-48*time.Hour)),
		stamped("newest", now),
		stamped("middle", now.Add(-24*time.Hour)),
	}

	top := TopN(articles, 2)
	if len(top) != 2 {
		t.Fatalf("got %d articles, want 2", len(top))
	}
	if top[0].Title != "newest" || top[1].Title != "middle" {
		t.Errorf("order = [%s, %s], want [newest, middle]", top[0].Title, top[1].Title)
	}
}

func TestTopNUndatedSortLast(t *testing.T) {
	articles := []Article{
		{Title: "undated-a", URL: "https://example.com/a"},
		stamped("dated", now),
		{Title: "undated-b", URL: "https://example.com/b"},
	}

	top := TopN(articles, 3)
	if top[0].Title != "dated" {
		t.Errorf("first = %q, want dated", top[0].Title)
	}
	// Undated articles keep their original relative order.
	if top[1].Title != "undated-a" || top[2].Title != "undated-b" {
		t.Errorf("undated order = [%s, %s], want [undated-a, undated-b]", top[1].Title, top[2].Title)
	}
}

func TestTopNNoTimestampsPreservesOrder(t *testing.T) {
	articles := []Article{
		{Title: "first", URL: "https://example.com/1"},
		{Title: "second", URL: "https://example.com/2"},
		{Title: "third", URL: "https://example.com/3"},
	}

	top := TopN(articles, 2)
	if top[0].Title != "first" || top[1].Title != "second" {
		t.Errorf("order = [%s, %s], want [first, second]", top[0].Title, top[1].Title)
	}
}

func TestTopNBounds(t *testing.T) {
	articles := []Article{stamped("only", now)}
	if got := TopN(articles, 5); len(got) != 1 {
		t.Errorf("TopN beyond length: got %d, want 1", len(got))
	}
	if got := TopN(articles, 0); got != nil {
		t.Errorf("TopN(0) = %v, want nil", got)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latest_news.json")
	articles := []Article{stamped("roundtrip", now)}

	if err := Save(articles, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "roundtrip" {
		t.Errorf("loaded = %+v, want one roundtrip article", loaded)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("LoadFile() should fail for a missing file")
	}
}
