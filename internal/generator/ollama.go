package generator

import (
	"context"
	"path"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// ollamaTasksMarker guards the ollama task group in the Makefile.
const ollamaTasksMarker = "# ---- ollama tasks ----"

// OllamaGenerator writes the local model-server client stub, a usage
// example, a test stub, and the model configuration file.
type OllamaGenerator struct {
	renderer template.Renderer
}

// NewOllamaGenerator creates an OllamaGenerator.
func NewOllamaGenerator(r template.Renderer) *OllamaGenerator {
	return &OllamaGenerator{renderer: r}
}

func (g *OllamaGenerator) Name() string { return "ollama" }

func (g *OllamaGenerator) Enabled(rc *template.Context) bool { return rc.Ollama }

// Generate writes the Ollama client files and appends the ollama task
// group to the Makefile.
func (g *OllamaGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	files := []fileSpec{
		{tmpl: "ollama/client.py.tmpl", dest: path.Join("src", rc.PackageName, "ollama_client.py")},
		{tmpl: "ollama/example.py.tmpl", dest: "examples/ollama_example.py"},
		{tmpl: "ollama/test_client.py.tmpl", dest: "tests/test_ollama_client.py"},
		{tmpl: "ollama/ollama.yaml.tmpl", dest: "configs/ollama.yaml"},
	}
	if err := renderAll(ctx, g.renderer, ws, rc, files); err != nil {
		return err
	}
	return ensureRenderedBlock(g.renderer, ws, rc, "ollama/makefile-ollama.mk.tmpl", defs.Makefile, ollamaTasksMarker)
}
