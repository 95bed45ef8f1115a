package gitops

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestAvailable(t *testing.T) {
	r := NewRunner(nil)

	// "sh" exists on every platform this tool targets.
	if !r.Available("sh") {
		t.Error("Available(sh) = false")
	}
	if r.Available("definitely-not-a-real-tool-xyz") {
		t.Error("Available(nonexistent) = true")
	}
}

func TestRun_Success(t *testing.T) {
	r := NewRunner(nil)

	if err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "true"); err != nil {
		t.Errorf("Run(true) error = %v", err)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	r := NewRunner(nil)

	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo boom >&2; exit 3")
	if !errors.Is(err, ErrToolFailed) {
		t.Fatalf("Run() error = %v, want ErrToolFailed", err)
	}
	if got := err.Error(); !strings.Contains(got, "boom") {
		t.Errorf("error %q does not include tool output", got)
	}
}

func TestInitRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	r := NewRunner(nil)

	// git commit needs an identity; provide one locally after init.
	if err := r.Run(context.Background(), dir, "git", "init", "-q"); err != nil {
		t.Fatalf("git init error = %v", err)
	}
	if err := r.Run(context.Background(), dir, "git", "config", "user.email", "test@example.com"); err != nil {
		t.Fatalf("git config error = %v", err)
	}
	if err := r.Run(context.Background(), dir, "git", "config", "user.name", "Test"); err != nil {
		t.Fatalf("git config error = %v", err)
	}
	if err := r.Run(context.Background(), dir, "sh", "-c", "echo hi > README.md"); err != nil {
		t.Fatalf("write file error = %v", err)
	}
	if err := r.Run(context.Background(), dir, "git", "add", "-A"); err != nil {
		t.Fatalf("git add error = %v", err)
	}
	if err := r.Run(context.Background(), dir, "git", "commit", "-q", "-m", "initial"); err != nil {
		t.Fatalf("git commit error = %v", err)
	}
}
