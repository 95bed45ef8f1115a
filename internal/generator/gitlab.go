package generator

import (
	"context"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// GitLabCIGenerator writes the GitLab CI pipeline configuration.
type GitLabCIGenerator struct {
	renderer template.Renderer
}

// NewGitLabCIGenerator creates a GitLabCIGenerator.
func NewGitLabCIGenerator(r template.Renderer) *GitLabCIGenerator {
	return &GitLabCIGenerator{renderer: r}
}

func (g *GitLabCIGenerator) Name() string { return "gitlab-ci" }

func (g *GitLabCIGenerator) Enabled(rc *template.Context) bool { return rc.GitLabCI }

// Generate writes .gitlab-ci.yml.
func (g *GitLabCIGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	return renderAll(ctx, g.renderer, ws, rc, []fileSpec{
		{tmpl: "gitlab/gitlab-ci.yml.tmpl", dest: defs.GitLabCIYML},
	})
}
