package generator

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// Metadata is the on-disk record of how a project was generated, written
// to .create-project.yaml in the project root.
type Metadata struct {
	Generator struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"generator"`
	CreatedAt string `yaml:"created_at"`
	Project   struct {
		Name          string `yaml:"name"`
		Template      string `yaml:"template"`
		PythonVersion string `yaml:"python_version"`
		Framework     string `yaml:"framework"`
	} `yaml:"project"`
	Features struct {
		Docker        bool `yaml:"docker"`
		Sphinx        bool `yaml:"sphinx"`
		GitHubActions bool `yaml:"github_actions"`
		GitLabCI      bool `yaml:"gitlab_ci"`
		Conda         bool `yaml:"conda"`
		Ollama        bool `yaml:"ollama"`
		DVC           bool `yaml:"dvc"`
	} `yaml:"features"`
	OllamaModel string `yaml:"ollama_model,omitempty"`
	DVCRemote   string `yaml:"dvc_remote,omitempty"`
}

// MetadataGenerator records the generation request in the project root so
// a generated tree documents its own provenance.
type MetadataGenerator struct{}

// NewMetadataGenerator creates a MetadataGenerator.
func NewMetadataGenerator() *MetadataGenerator {
	return &MetadataGenerator{}
}

func (g *MetadataGenerator) Name() string { return "metadata" }

func (g *MetadataGenerator) Enabled(*template.Context) bool { return true }

// Generate writes .create-project.yaml.
func (g *MetadataGenerator) Generate(_ context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	var md Metadata
	md.Generator.Name = "create-project"
	md.Generator.Version = rc.Version
	md.CreatedAt = rc.CreatedAt
	md.Project.Name = rc.ProjectName
	md.Project.Template = rc.Template
	md.Project.PythonVersion = rc.PythonVersion
	md.Project.Framework = rc.Framework
	md.Features.Docker = rc.Docker
	md.Features.Sphinx = rc.Sphinx
	md.Features.GitHubActions = rc.GitHubActions
	md.Features.GitLabCI = rc.GitLabCI
	md.Features.Conda = rc.Conda
	md.Features.Ollama = rc.Ollama
	md.Features.DVC = rc.DVC
	if rc.Ollama {
		md.OllamaModel = rc.OllamaModel
	}
	if rc.DVC {
		md.DVCRemote = rc.DVCRemote
	}

	data, err := yaml.Marshal(&md)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	return ws.WriteFile(defs.MetadataYAML, data, defs.FilePerm)
}
