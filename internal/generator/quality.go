package generator

import (
	"context"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// QualityGenerator writes the pre-commit configuration and the base
// ignore file. The DVC generator appends its own guarded ignore block.
type QualityGenerator struct {
	renderer template.Renderer
}

// NewQualityGenerator creates a QualityGenerator.
func NewQualityGenerator(r template.Renderer) *QualityGenerator {
	return &QualityGenerator{renderer: r}
}

func (g *QualityGenerator) Name() string { return "quality" }

func (g *QualityGenerator) Enabled(*template.Context) bool { return true }

// Generate writes .pre-commit-config.yaml and .gitignore.
func (g *QualityGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	return renderAll(ctx, g.renderer, ws, rc, []fileSpec{
		{tmpl: "base/pre-commit-config.yaml.tmpl", dest: defs.PreCommitConfig},
		{tmpl: "base/gitignore.tmpl", dest: defs.GitIgnore},
		{tmpl: "base/config.yaml.tmpl", dest: "configs/config.yaml"},
	})
}
