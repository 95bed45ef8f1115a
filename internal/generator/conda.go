package generator

import (
	"context"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// CondaGenerator writes the conda environment file.
type CondaGenerator struct {
	renderer template.Renderer
}

// NewCondaGenerator creates a CondaGenerator.
func NewCondaGenerator(r template.Renderer) *CondaGenerator {
	return &CondaGenerator{renderer: r}
}

func (g *CondaGenerator) Name() string { return "conda" }

func (g *CondaGenerator) Enabled(rc *template.Context) bool { return rc.Conda }

// Generate writes environment.yml.
func (g *CondaGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	return renderAll(ctx, g.renderer, ws, rc, []fileSpec{
		{tmpl: "conda/environment.yml.tmpl", dest: defs.EnvironmentYML},
	})
}
