package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScaffoldCommandCreatesTree(t *testing.T) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("restoring wd: %v", err)
		}
	})

	if err := scaffoldCmd.RunE(scaffoldCmd, nil); err != nil {
		t.Fatalf("scaffold failed: %v", err)
	}

	for _, path := range []string{
		filepath.Join("ai-driven-smart-news", "main.py"),
		filepath.Join("ai-driven-smart-news", "configs", "api_config.json"),
		filepath.Join("ai-driven-smart-news", ".github", "workflows", "ci.yml"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}

	// Second run against the same tree must be a no-op, not an error.
	if err := scaffoldCmd.RunE(scaffoldCmd, nil); err != nil {
		t.Fatalf("re-running scaffold failed: %v", err)
	}
}

func TestPreviewCutsOnRuneBoundary(t *testing.T) {
	got := preview("📰📰📰📰", 2)
	if got != "📰📰..." {
		t.Errorf("preview = %q, want %q", got, "📰📰...")
	}
	if got := preview("short", 300); got != "short" {
		t.Errorf("preview = %q, want unchanged input", got)
	}
}
