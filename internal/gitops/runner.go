// Package gitops runs the external tools a generated project depends on:
// git for repository initialization and dvc for data-versioning setup.
// Every invocation is fatal on non-zero exit; a missing binary is the
// caller's decision (warn, fall back, or fail).
package gitops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// ErrToolFailed indicates an external tool exited non-zero.
var ErrToolFailed = errors.New("gitops: external tool failed")

// Runner executes external tools in a working directory.
type Runner interface {
	// Available reports whether the tool is on PATH.
	Available(tool string) bool

	// Run executes the tool in dir and returns ErrToolFailed (with the
	// tool's combined output) on non-zero exit.
	Run(ctx context.Context, dir, tool string, args ...string) error
}

// execRunner is the exec.Command-backed Runner.
type execRunner struct {
	logger *slog.Logger
}

// NewRunner creates a Runner with the given logger.
func NewRunner(logger *slog.Logger) Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &execRunner{logger: logger}
}

func (r *execRunner) Available(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

func (r *execRunner) Run(ctx context.Context, dir, tool string, args ...string) error {
	r.logger.Debug("running external tool", "tool", tool, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v: %s",
			ErrToolFailed, tool, strings.Join(args, " "), err, bytes.TrimSpace(output))
	}
	return nil
}

// InitRepository initializes a git repository in dir and commits the
// generated tree.
func InitRepository(ctx context.Context, r Runner, dir string) error {
	steps := [][]string{
		{"init", "-q"},
		{"add", "-A"},
		{"commit", "-q", "-m", "Initial project scaffold"},
	}
	for _, args := range steps {
		if err := r.Run(ctx, dir, "git", args...); err != nil {
			return err
		}
	}
	return nil
}

// InitDVC runs the data-versioning subsystem's own initialization in dir.
// The repository is not a git repo yet (git init runs last), so no-scm
// mode is required.
func InitDVC(ctx context.Context, r Runner, dir string) error {
	return r.Run(ctx, dir, "dvc", "init", "--no-scm", "-q")
}
