package scaffold

import (
	"fmt"
	"path"
	"strings"
)

// Plan describes the desired filesystem state: a root directory, the
// directories to guarantee under it, and the empty files to guarantee.
// Order matters: directories are created before any file, so every file's
// parent must be the root or one of Dirs.
type Plan struct {
	Root  string
	Dirs  []string
	Files []string
}

// DefaultPlan returns the skeleton of the ai-driven-smart-news project.
func DefaultPlan() Plan {
	return Plan{
		Root: "ai-driven-smart-news",
		Dirs: []string{
			"logger",
			"configs",
			"core",
			"tests",
			"utils",
			".github/workflows",
		},
		Files: []string{
			"logger/__init__.py",
			"logger/logger_config.py",
			"configs/__init__.py",
			"configs/api_config.json",
			"configs/discord_config.json",
			"core/__init__.py",
			"core/api_handler.py",
			"core/news_processor.py",
			"core/discord_poster.py",
			"tests/__init__.py",
			"tests/test_api_handler.py",
			"tests/test_news_processor.py",
			"tests/test_discord_poster.py",
			"utils/__init__.py",
			"utils/helpers.py",
			".github/workflows/ci.yml",
			".gitignore",
			"requirements.txt",
			"README.md",
			"setup.py",
			"main.py",
		},
	}
}

// Validate checks the plan's internal consistency: the root is a single
// clean path segment, no path escapes the root, and every file's parent
// directory is either the root itself or one of the declared Dirs.
func (p Plan) Validate() error {
	if p.Root == "" || p.Root == "." || p.Root == ".." {
		return fmt.Errorf("invalid plan root %q", p.Root)
	}
	if strings.ContainsAny(p.Root, `/\`) {
		return fmt.Errorf("plan root must be a single path segment: %q", p.Root)
	}

	declared := make(map[string]bool, len(p.Dirs)+1)
	declared["."] = true
	for _, d := range p.Dirs {
		if err := validateRelPath(d); err != nil {
			return fmt.Errorf("directory %q: %w", d, err)
		}
		// Declaring a nested directory implies its ancestors.
		for cur := path.Clean(d); cur != "."; cur = path.Dir(cur) {
			declared[cur] = true
		}
	}

	for _, f := range p.Files {
		if err := validateRelPath(f); err != nil {
			return fmt.Errorf("file %q: %w", f, err)
		}
		if parent := path.Dir(path.Clean(f)); !declared[parent] {
			return fmt.Errorf("file %q has undeclared parent directory %q", f, parent)
		}
	}
	return nil
}

func validateRelPath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("absolute paths are not allowed")
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path escapes the root")
	}
	return nil
}
