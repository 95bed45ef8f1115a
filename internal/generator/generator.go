// Package generator contains the file generators that compose a project.
// Each generator is a pure "render templates, write files" step over a
// scaffold.Workspace; it has no knowledge of the other generators beyond
// the marker-guarded blocks it contributes to shared files.
package generator

import (
	"context"
	"io/fs"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// Generator produces part of the generated project tree.
type Generator interface {
	// Name identifies the generator in logs and errors.
	Name() string

	// Enabled reports whether this generator applies to the request.
	Enabled(rc *template.Context) bool

	// Generate renders and writes this generator's files.
	Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error
}

// fileSpec maps one embedded template to its destination in the project.
type fileSpec struct {
	tmpl string
	dest string
	perm fs.FileMode
}

// renderAll renders each fileSpec and writes it into the workspace,
// checking context cancellation between files.
func renderAll(ctx context.Context, r template.Renderer, ws *scaffold.Workspace, rc *template.Context, files []fileSpec) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		content, err := r.Render(f.tmpl, rc)
		if err != nil {
			return err
		}
		perm := f.perm
		if perm == 0 {
			perm = defs.FilePerm
		}
		if err := ws.WriteFile(f.dest, content, perm); err != nil {
			return err
		}
	}
	return nil
}

// ensureRenderedBlock renders a block template and appends it to a shared
// file through the workspace merge guard.
func ensureRenderedBlock(r template.Renderer, ws *scaffold.Workspace, rc *template.Context, tmpl, dest, marker string) error {
	block, err := r.Render(tmpl, rc)
	if err != nil {
		return err
	}
	return ws.EnsureBlock(dest, marker, block)
}

// DefaultPipeline returns every generator in its fixed execution order.
// Disabled generators are skipped by the composer via Enabled.
func DefaultPipeline(r template.Renderer) []Generator {
	return []Generator{
		NewStructureGenerator(),
		NewManifestGenerator(r),
		NewTaskfileGenerator(r),
		NewQualityGenerator(r),
		NewReadmeGenerator(r),
		NewMetadataGenerator(),
		NewCondaGenerator(r),
		NewDockerGenerator(r),
		NewSphinxGenerator(r),
		NewGitHubActionsGenerator(r),
		NewGitLabCIGenerator(r),
		NewOllamaGenerator(r),
		NewDVCGenerator(r),
	}
}
