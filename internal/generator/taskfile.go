package generator

import (
	"context"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// TaskfileGenerator writes the base Makefile. Feature generators append
// their own marker-guarded task groups to it afterwards.
type TaskfileGenerator struct {
	renderer template.Renderer
}

// NewTaskfileGenerator creates a TaskfileGenerator.
func NewTaskfileGenerator(r template.Renderer) *TaskfileGenerator {
	return &TaskfileGenerator{renderer: r}
}

func (g *TaskfileGenerator) Name() string { return "taskfile" }

func (g *TaskfileGenerator) Enabled(*template.Context) bool { return true }

// Generate writes the base Makefile.
func (g *TaskfileGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	return renderAll(ctx, g.renderer, ws, rc, []fileSpec{
		{tmpl: "base/Makefile.tmpl", dest: defs.Makefile},
	})
}
