package generator

import (
	"context"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// ReadmeGenerator writes the project README, including the framework
// integration section selected by the framework value.
type ReadmeGenerator struct {
	renderer template.Renderer
}

// NewReadmeGenerator creates a ReadmeGenerator.
func NewReadmeGenerator(r template.Renderer) *ReadmeGenerator {
	return &ReadmeGenerator{renderer: r}
}

func (g *ReadmeGenerator) Name() string { return "readme" }

func (g *ReadmeGenerator) Enabled(*template.Context) bool { return true }

// Generate writes README.md.
func (g *ReadmeGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	return renderAll(ctx, g.renderer, ws, rc, []fileSpec{
		{tmpl: "base/README.md.tmpl", dest: defs.ReadmeMD},
	})
}
