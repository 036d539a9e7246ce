package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FilesystemError wraps any filesystem-level failure during scaffolding:
// permission denial, a path component that exists with the wrong type, or
// any other creation failure. The first one aborts the whole run.
type FilesystemError struct {
	Op   string // "mkdir" or "create"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// Scaffolder applies a Plan to a filesystem. The filesystem is injected so
// the behavior is testable without touching the real disk.
type Scaffolder struct {
	fs  afero.Fs
	out io.Writer
}

// New creates a Scaffolder writing to fs and printing its completion
// message to out.
func New(fs afero.Fs, out io.Writer) *Scaffolder {
	return &Scaffolder{fs: fs, out: out}
}

// Run materializes the plan: root directory first, then all declared
// directories, then all declared files, then a single completion line.
// Re-running against an already scaffolded tree changes nothing.
func (s *Scaffolder) Run(plan Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("invalid scaffold plan: %w", err)
	}
	if err := s.ensureDir(plan.Root); err != nil {
		return err
	}
	if err := s.EnsureDirectories(plan); err != nil {
		return err
	}
	if err := s.EnsureFiles(plan); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Project structure for %s created successfully.\n", plan.Root)
	return nil
}

// EnsureDirectories guarantees every declared directory exists under the
// plan root, creating missing intermediate ancestors. Existing directories
// are left untouched.
func (s *Scaffolder) EnsureDirectories(plan Plan) error {
	for _, dir := range plan.Dirs {
		if err := s.ensureDir(filepath.Join(plan.Root, filepath.FromSlash(dir))); err != nil {
			return err
		}
	}
	return nil
}

// EnsureFiles guarantees every declared file exists under the plan root.
// Missing files are created empty; existing files keep their content
// byte for byte (never truncated, never overwritten).
func (s *Scaffolder) EnsureFiles(plan Plan) error {
	for _, file := range plan.Files {
		if err := s.ensureFile(filepath.Join(plan.Root, filepath.FromSlash(file))); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scaffolder) ensureDir(path string) error {
	info, err := s.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return &FilesystemError{Op: "mkdir", Path: path, Err: fmt.Errorf("already exists as a file")}
	case !os.IsNotExist(err):
		return &FilesystemError{Op: "mkdir", Path: path, Err: err}
	}
	if err := s.fs.MkdirAll(path, 0o755); err != nil {
		return &FilesystemError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

func (s *Scaffolder) ensureFile(path string) error {
	info, err := s.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return &FilesystemError{Op: "create", Path: path, Err: fmt.Errorf("already exists as a directory")}
	case err == nil:
		return nil // existing content is preserved
	case !os.IsNotExist(err):
		return &FilesystemError{Op: "create", Path: path, Err: err}
	}
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return &FilesystemError{Op: "create", Path: path, Err: err}
	}
	return f.Close()
}
