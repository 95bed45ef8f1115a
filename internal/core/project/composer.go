package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/generator"
	"github.com/genai-devkit/create-project/internal/gitops"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
	"github.com/genai-devkit/create-project/pkg/models"
)

// ComposeOptions configures a single composition run.
type ComposeOptions struct {
	Spec      models.ProjectSpec // The validated generation request.
	ParentDir string             // Directory the project directory is created in.
	Author    string             // Author name recorded in generated metadata.
	SkipGit   bool               // If true, skip git init and the initial commit.
}

// ComposeResult summarizes the outcome of a composition run.
type ComposeResult struct {
	ProjectDir   string   // Absolute path of the created project.
	CreatedDirs  []string // Directories that were created, relative to ProjectDir.
	CreatedFiles []string // Files that were created, relative to ProjectDir.
	Warnings     []string // Non-fatal warnings (missing optional tools).
}

// Composer produces a project tree from a ProjectSpec.
type Composer interface {
	// Compose creates the project directory and runs every enabled
	// generator, then the external tool initialization steps. The first
	// error aborts the run; already-written files are left on disk.
	Compose(ctx context.Context, opts ComposeOptions) (*ComposeResult, error)
}

// projectComposer is the concrete implementation of Composer.
type projectComposer struct {
	pipeline []generator.Generator
	runner   gitops.Runner
	logger   *slog.Logger
}

// NewComposer creates a Composer from a generator pipeline and tool
// runner. A nil runner disables the git and dvc initialization steps.
func NewComposer(pipeline []generator.Generator, runner gitops.Runner, logger *slog.Logger) Composer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectComposer{
		pipeline: pipeline,
		runner:   runner,
		logger:   logger,
	}
}

// Compose runs the full composition sequence.
func (c *projectComposer) Compose(ctx context.Context, opts ComposeOptions) (*ComposeResult, error) {
	if err := opts.Spec.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projectDir := filepath.Join(filepath.Clean(opts.ParentDir), opts.Spec.Name)
	if _, err := os.Stat(projectDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, projectDir)
	}

	c.logger.Info("composing project",
		"name", opts.Spec.Name,
		"dir", projectDir,
		"python", opts.Spec.PythonVersion,
		"framework", opts.Spec.Framework,
	)

	if err := os.MkdirAll(projectDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create project directory %s: %w", projectDir, err)
	}

	ws := scaffold.New(projectDir)
	rc := template.NewContext(opts.Spec, template.WithAuthor(opts.Author))

	result := &ComposeResult{ProjectDir: projectDir}

	// The data-versioning subsystem initializes itself before its config
	// files are generated; the generated .dvc/config then replaces the
	// stock one. A non-zero exit is fatal, a missing binary is not: the
	// dvc generator writes the .dvc/ directory either way.
	if opts.Spec.Features.DVC && c.runner != nil {
		if c.runner.Available("dvc") {
			if err := gitops.InitDVC(ctx, c.runner, projectDir); err != nil {
				return nil, err
			}
		} else {
			result.Warnings = append(result.Warnings,
				"dvc is not installed; wrote .dvc/ configuration without running dvc init")
			c.logger.Warn("dvc not found on PATH, skipping dvc init")
		}
	}

	for _, gen := range c.pipeline {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !gen.Enabled(rc) {
			continue
		}
		c.logger.Debug("running generator", "name", gen.Name())
		if err := gen.Generate(ctx, ws, rc); err != nil {
			return nil, fmt.Errorf("%w: generator %s: %v", ErrComposeFailed, gen.Name(), err)
		}
	}

	// Version-control initialization runs last so the initial commit
	// captures the complete tree.
	if !opts.SkipGit && c.runner != nil {
		if c.runner.Available("git") {
			if err := gitops.InitRepository(ctx, c.runner, projectDir); err != nil {
				return nil, err
			}
		} else {
			result.Warnings = append(result.Warnings,
				"git is not installed; skipped repository initialization")
			c.logger.Warn("git not found on PATH, skipping repository init")
		}
	}

	result.CreatedDirs = ws.CreatedDirs()
	result.CreatedFiles = ws.CreatedFiles()

	c.logger.Info("project composed",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"warnings", len(result.Warnings),
	)

	return result, nil
}
