package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// ManifestGenerator writes the dependency manifest (requirements.txt) and
// the pyproject.toml build configuration.
type ManifestGenerator struct {
	renderer template.Renderer
}

// NewManifestGenerator creates a ManifestGenerator.
func NewManifestGenerator(r template.Renderer) *ManifestGenerator {
	return &ManifestGenerator{renderer: r}
}

func (g *ManifestGenerator) Name() string { return "manifest" }

func (g *ManifestGenerator) Enabled(*template.Context) bool { return true }

// Generate writes requirements.txt and pyproject.toml.
func (g *ManifestGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	reqs := BuildRequirements(rc)
	if err := ws.WriteFile(defs.Requirements, []byte(reqs), defs.FilePerm); err != nil {
		return err
	}
	return renderAll(ctx, g.renderer, ws, rc, []fileSpec{
		{tmpl: "base/pyproject.toml.tmpl", dest: defs.PyProject},
	})
}

// BuildRequirements assembles the pip dependency list as a pure function
// of the render context: base dependencies first, then framework
// packages, then per-feature extras.
func BuildRequirements(rc *template.Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Requirements for %s (Python %s)\n", rc.ProjectName, rc.PythonVersion)
	b.WriteString("pyyaml>=6.0\n")
	b.WriteString("python-dotenv>=1.0\n")

	if rc.UseLlamaIndex {
		b.WriteString("llama-index>=0.10\n")
	}
	if rc.UseLangChain {
		b.WriteString("langchain>=0.1\n")
		b.WriteString("langchain-community>=0.0.20\n")
	}

	if rc.Ollama {
		b.WriteString("httpx>=0.27\n")
	}

	if rc.DVC {
		switch rc.DVCRemote {
		case "s3":
			b.WriteString("dvc[s3]>=3.0\n")
		case "gcs":
			b.WriteString("dvc[gs]>=3.0\n")
		case "azure":
			b.WriteString("dvc[azure]>=3.0\n")
		default:
			b.WriteString("dvc>=3.0\n")
		}
	}

	return b.String()
}
