package updater

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		current, latest string
		want            int
	}{
		{"1.0.0", "1.0.1", -1},
		{"v1.2.0", "1.2.0", 0},
		{"2.0.0", "v1.9.9", 1},
		{"0.1.0", "1.0.0", -1},
	}

	for _, tt := range tests {
		got, err := CompareVersions(tt.current, tt.latest)
		if err != nil {
			t.Errorf("CompareVersions(%q, %q) error: %v", tt.current, tt.latest, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestCompareVersionsInvalid(t *testing.T) {
	if _, err := CompareVersions("dev", "1.0.0"); err == nil {
		t.Error("expected error for non-semver current version")
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	available, err := IsUpdateAvailable("1.0.0", "1.1.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable() error: %v", err)
	}
	if !available {
		t.Error("expected update to be available")
	}

	available, err = IsUpdateAvailable("1.1.0", "1.1.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable() error: %v", err)
	}
	if available {
		t.Error("expected no update for equal versions")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// First load: no cache yet.
	cache, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache() error: %v", err)
	}
	if cache != nil {
		t.Fatalf("expected nil cache on first run, got %+v", cache)
	}

	saved := &VersionCache{
		LatestVersion:   "1.2.0",
		CurrentVersion:  "1.0.0",
		CheckedAt:       time.Now(),
		UpdateAvailable: true,
	}
	if err := SaveCache(dir, saved); err != nil {
		t.Fatalf("SaveCache() error: %v", err)
	}

	loaded, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache() error: %v", err)
	}
	if loaded == nil || loaded.LatestVersion != "1.2.0" || !loaded.UpdateAvailable {
		t.Errorf("loaded cache = %+v", loaded)
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, DefaultCacheMaxAge) {
		t.Error("nil cache should be stale")
	}
	fresh := &VersionCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, DefaultCacheMaxAge) {
		t.Error("fresh cache should not be stale")
	}
	old := &VersionCache{CheckedAt: time.Now().Add(-48 * time.Hour)}
	if !IsCacheStale(old, DefaultCacheMaxAge) {
		t.Error("48h old cache should be stale")
	}
}

func TestCheckLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.3.0", "html_url": "https://github.com/example/releases/v1.3.0"}`)
	}))
	defer srv.Close()

	orig := apiBase
	apiBase = srv.URL
	defer func() { apiBase = orig }()

	release, err := New("1.0.0").CheckLatestVersion()
	if err != nil {
		t.Fatalf("CheckLatestVersion() error: %v", err)
	}
	if release.Version != "v1.3.0" {
		t.Errorf("Version = %q, want v1.3.0", release.Version)
	}
}

func TestCheckLatestVersionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	orig := apiBase
	apiBase = srv.URL
	defer func() { apiBase = orig }()

	if _, err := New("1.0.0").CheckLatestVersion(); err == nil {
		t.Fatal("expected error for missing release")
	}
}
