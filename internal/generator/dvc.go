package generator

import (
	"context"
	"path"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// Markers guarding the DVC contributions to shared files.
const (
	dvcTasksMarker  = "# ---- dvc tasks ----"
	dvcIgnoreMarker = "# ---- dvc artifacts ----"
)

// dvcInternalIgnore keeps the DVC cache and runtime state out of git.
// dvc init writes the same file; this covers the fallback path when the
// dvc binary is not installed.
const dvcInternalIgnore = "/config.local\n/tmp\n/cache\n"

// DVCGenerator writes the data-versioning configuration: remote storage
// config, the prepare/train/evaluate pipeline, parameters, and the stage
// script stubs.
type DVCGenerator struct {
	renderer template.Renderer
}

// NewDVCGenerator creates a DVCGenerator.
func NewDVCGenerator(r template.Renderer) *DVCGenerator {
	return &DVCGenerator{renderer: r}
}

func (g *DVCGenerator) Name() string { return "dvc" }

func (g *DVCGenerator) Enabled(rc *template.Context) bool { return rc.DVC }

// Generate writes the DVC artifacts and appends the guarded dvc blocks
// to the Makefile and .gitignore.
func (g *DVCGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	files := []fileSpec{
		{tmpl: "dvc/config.tmpl", dest: defs.DVCConfig},
		{tmpl: "dvc/dvc.yaml.tmpl", dest: defs.DVCPipeline},
		{tmpl: "dvc/params.yaml.tmpl", dest: defs.DVCParams},
		{tmpl: "dvc/prepare.py.tmpl", dest: "scripts/prepare.py", perm: defs.ScriptPerm},
		{tmpl: "dvc/train.py.tmpl", dest: "scripts/train.py", perm: defs.ScriptPerm},
		{tmpl: "dvc/evaluate.py.tmpl", dest: "scripts/evaluate.py", perm: defs.ScriptPerm},
	}
	if err := renderAll(ctx, g.renderer, ws, rc, files); err != nil {
		return err
	}

	if err := ws.WriteFile(path.Join(defs.DVCDir, ".gitignore"), []byte(dvcInternalIgnore), defs.FilePerm); err != nil {
		return err
	}

	if err := ensureRenderedBlock(g.renderer, ws, rc, "dvc/gitignore-dvc.tmpl", defs.GitIgnore, dvcIgnoreMarker); err != nil {
		return err
	}
	return ensureRenderedBlock(g.renderer, ws, rc, "dvc/makefile-dvc.mk.tmpl", defs.Makefile, dvcTasksMarker)
}
