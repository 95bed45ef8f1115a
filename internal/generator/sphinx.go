package generator

import (
	"context"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// docsTasksMarker guards the docs task group in the root Makefile.
const docsTasksMarker = "# ---- docs tasks ----"

// SphinxGenerator writes the Sphinx documentation source tree and its
// nested Makefile.
type SphinxGenerator struct {
	renderer template.Renderer
}

// NewSphinxGenerator creates a SphinxGenerator.
func NewSphinxGenerator(r template.Renderer) *SphinxGenerator {
	return &SphinxGenerator{renderer: r}
}

func (g *SphinxGenerator) Name() string { return "sphinx" }

func (g *SphinxGenerator) Enabled(rc *template.Context) bool { return rc.Sphinx }

// Generate writes the docs/ tree and appends the docs task group to the
// root Makefile.
func (g *SphinxGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	files := []fileSpec{
		{tmpl: "sphinx/conf.py.tmpl", dest: "docs/conf.py"},
		{tmpl: "sphinx/index.rst.tmpl", dest: "docs/index.rst"},
		{tmpl: "sphinx/installation.rst.tmpl", dest: "docs/installation.rst"},
		{tmpl: "sphinx/usage.rst.tmpl", dest: "docs/usage.rst"},
		{tmpl: "sphinx/contributing.rst.tmpl", dest: "docs/contributing.rst"},
		{tmpl: "sphinx/authors.rst.tmpl", dest: "docs/authors.rst"},
		{tmpl: "sphinx/history.rst.tmpl", dest: "docs/history.rst"},
		{tmpl: "sphinx/Makefile.tmpl", dest: "docs/Makefile"},
	}
	if err := renderAll(ctx, g.renderer, ws, rc, files); err != nil {
		return err
	}
	return ensureRenderedBlock(g.renderer, ws, rc, "sphinx/makefile-docs.mk.tmpl", defs.Makefile, docsTasksMarker)
}
