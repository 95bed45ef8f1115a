// Package scaffold provides the filesystem workspace that generators
// write into. All paths are relative to the project root; the workspace
// rejects paths that would escape it, records every created file and
// directory, and offers the single marker-guarded append primitive used
// for shared targets (Makefile, .gitignore).
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/genai-devkit/create-project/internal/defs"
)

// ErrPathEscape indicates a relative path would resolve outside the
// workspace root.
var ErrPathEscape = errors.New("scaffold: path escapes project root")

// Workspace tracks file and directory creation under a project root.
type Workspace struct {
	root string

	createdDirs  map[string]bool
	createdFiles map[string]bool
}

// New creates a Workspace rooted at the given project directory.
func New(root string) *Workspace {
	return &Workspace{
		root:         filepath.Clean(root),
		createdDirs:  make(map[string]bool),
		createdFiles: make(map[string]bool),
	}
}

// Root returns the absolute project root.
func (w *Workspace) Root() string {
	return w.root
}

// resolve validates rel and returns the absolute path under the root.
func (w *Workspace) resolve(rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathEscape, rel)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: parent reference in %q", ErrPathEscape, rel)
	}
	return filepath.Join(w.root, cleaned), nil
}

// MkdirAll creates the directory rel (and parents) under the root.
func (w *Workspace) MkdirAll(rel string) error {
	abs, err := w.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", abs, err)
	}
	w.createdDirs[filepath.ToSlash(filepath.Clean(rel))] = true
	return nil
}

// WriteFile writes content to rel, creating parent directories as needed.
func (w *Workspace) WriteFile(rel string, content []byte, perm fs.FileMode) error {
	abs, err := w.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(abs), err)
	}
	if err := os.WriteFile(abs, content, perm); err != nil {
		return fmt.Errorf("write %s: %w", abs, err)
	}
	w.createdFiles[filepath.ToSlash(filepath.Clean(rel))] = true
	return nil
}

// Exists reports whether rel exists under the root.
func (w *Workspace) Exists(rel string) bool {
	abs, err := w.resolve(rel)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(abs)
	return statErr == nil
}

// ReadFile returns the content of rel.
func (w *Workspace) ReadFile(rel string) ([]byte, error) {
	abs, err := w.resolve(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", abs, err)
	}
	return data, nil
}

// EnsureBlock appends block to the shared file rel unless marker is
// already present in it. The marker must be a line unique to the block
// (and contained in it), so re-running any generator cannot duplicate a
// feature's contribution. If the file does not exist it is created with
// the block as its only content.
func (w *Workspace) EnsureBlock(rel, marker string, block []byte) error {
	if marker == "" {
		return fmt.Errorf("scaffold: empty marker for %s", rel)
	}
	abs, err := w.resolve(rel)
	if err != nil {
		return err
	}

	existing, readErr := os.ReadFile(abs)
	switch {
	case readErr == nil:
		if strings.Contains(string(existing), marker) {
			return nil
		}
	case os.IsNotExist(readErr):
		existing = nil
	default:
		return fmt.Errorf("read %s: %w", abs, readErr)
	}

	var out []byte
	out = append(out, existing...)
	if len(out) > 0 && !strings.HasSuffix(string(out), "\n") {
		out = append(out, '\n')
	}
	out = append(out, block...)

	if err := os.MkdirAll(filepath.Dir(abs), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(abs), err)
	}
	if err := os.WriteFile(abs, out, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", abs, err)
	}
	w.createdFiles[filepath.ToSlash(filepath.Clean(rel))] = true
	return nil
}

// CreatedDirs returns the sorted relative paths of created directories.
func (w *Workspace) CreatedDirs() []string {
	return sortedKeys(w.createdDirs)
}

// CreatedFiles returns the sorted relative paths of created files.
func (w *Workspace) CreatedFiles() []string {
	return sortedKeys(w.createdFiles)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
