package generator

import (
	"context"
	"path"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// GitHubActionsGenerator writes the GitHub Actions workflow set.
type GitHubActionsGenerator struct {
	renderer template.Renderer
}

// NewGitHubActionsGenerator creates a GitHubActionsGenerator.
func NewGitHubActionsGenerator(r template.Renderer) *GitHubActionsGenerator {
	return &GitHubActionsGenerator{renderer: r}
}

func (g *GitHubActionsGenerator) Name() string { return "github-actions" }

func (g *GitHubActionsGenerator) Enabled(rc *template.Context) bool { return rc.GitHubActions }

// Generate writes the .github/workflows/ files.
func (g *GitHubActionsGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	return renderAll(ctx, g.renderer, ws, rc, []fileSpec{
		{tmpl: "github/test.yml.tmpl", dest: path.Join(defs.WorkflowsDir, "test.yml")},
		{tmpl: "github/dependency-review.yml.tmpl", dest: path.Join(defs.WorkflowsDir, "dependency-review.yml")},
		{tmpl: "github/security-scan.yml.tmpl", dest: path.Join(defs.WorkflowsDir, "security-scan.yml")},
		{tmpl: "github/release.yml.tmpl", dest: path.Join(defs.WorkflowsDir, "release.yml")},
	})
}
