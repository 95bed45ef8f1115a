package generator

import (
	"context"
	"fmt"
	"path"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// skeletonDirs lists the fixed directory skeleton of every project.
// The src package directory is added per project name.
var skeletonDirs = []string{
	"tests",
	"data/raw",
	"data/processed",
	"docs",
	"scripts",
	"configs",
	"notebooks",
}

// keepDirs receive a .gitkeep marker so empty directories survive git.
var keepDirs = []string{
	"data/raw",
	"data/processed",
	"scripts",
	"notebooks",
}

// StructureGenerator creates the directory skeleton and package markers.
type StructureGenerator struct{}

// NewStructureGenerator creates a StructureGenerator.
func NewStructureGenerator() *StructureGenerator {
	return &StructureGenerator{}
}

func (g *StructureGenerator) Name() string { return "structure" }

func (g *StructureGenerator) Enabled(*template.Context) bool { return true }

// Generate creates the skeleton directories, the Python package under
// src/, and empty-directory markers.
func (g *StructureGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	pkgDir := path.Join("src", rc.PackageName)
	dirs := append([]string{pkgDir}, skeletonDirs...)
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ws.MkdirAll(dir); err != nil {
			return err
		}
	}

	initPy := fmt.Sprintf("\"\"\"%s.\"\"\"\n\n__version__ = \"0.1.0\"\n", rc.ProjectTitle)
	if err := ws.WriteFile(path.Join(pkgDir, "__init__.py"), []byte(initPy), defs.FilePerm); err != nil {
		return err
	}
	if err := ws.WriteFile("tests/__init__.py", nil, defs.FilePerm); err != nil {
		return err
	}

	for _, dir := range keepDirs {
		if err := ws.WriteFile(path.Join(dir, ".gitkeep"), nil, defs.FilePerm); err != nil {
			return err
		}
	}
	return nil
}
