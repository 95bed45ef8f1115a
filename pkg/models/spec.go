package models

import "regexp"

// Template selects the project layout variant.
type Template string

const (
	// TemplateBasic is the default single-package layout.
	TemplateBasic Template = "basic"

	// TemplateAdvanced is accepted for compatibility with earlier releases.
	// It is recorded in the project metadata but selects the same layout
	// as basic.
	TemplateAdvanced Template = "advanced"
)

// ValidTemplates returns all valid template values.
func ValidTemplates() []Template {
	return []Template{TemplateBasic, TemplateAdvanced}
}

// IsValid checks if the template is a valid value.
func (t Template) IsValid() bool {
	switch t {
	case TemplateBasic, TemplateAdvanced:
		return true
	}
	return false
}

// PythonVersion is the Python interpreter version targeted by the
// generated project.
type PythonVersion string

const (
	Python38  PythonVersion = "3.8"
	Python39  PythonVersion = "3.9"
	Python310 PythonVersion = "3.10"
	Python311 PythonVersion = "3.11"
)

// ValidPythonVersions returns all supported Python versions.
func ValidPythonVersions() []PythonVersion {
	return []PythonVersion{Python38, Python39, Python310, Python311}
}

// IsValid checks if the Python version is supported.
func (v PythonVersion) IsValid() bool {
	switch v {
	case Python38, Python39, Python310, Python311:
		return true
	}
	return false
}

// Framework selects the GenAI framework integration baked into the
// generated project.
type Framework string

const (
	FrameworkLlamaIndex Framework = "llamaindex"
	FrameworkLangChain  Framework = "langchain"
	FrameworkBoth       Framework = "both"
)

// ValidFrameworks returns all valid framework values.
func ValidFrameworks() []Framework {
	return []Framework{FrameworkLlamaIndex, FrameworkLangChain, FrameworkBoth}
}

// IsValid checks if the framework is a valid value.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkLlamaIndex, FrameworkLangChain, FrameworkBoth:
		return true
	}
	return false
}

// DVCRemote selects the remote storage backend for DVC.
type DVCRemote string

const (
	RemoteS3    DVCRemote = "s3"
	RemoteGCS   DVCRemote = "gcs"
	RemoteAzure DVCRemote = "azure"
	RemoteLocal DVCRemote = "local"
)

// ValidDVCRemotes returns all valid DVC remote values.
func ValidDVCRemotes() []DVCRemote {
	return []DVCRemote{RemoteS3, RemoteGCS, RemoteAzure, RemoteLocal}
}

// IsValid checks if the DVC remote is a valid value.
func (r DVCRemote) IsValid() bool {
	switch r {
	case RemoteS3, RemoteGCS, RemoteAzure, RemoteLocal:
		return true
	}
	return false
}

// Features is the set of independently toggleable optional feature flags.
type Features struct {
	Docker        bool `yaml:"docker"`
	Sphinx        bool `yaml:"sphinx"`
	GitHubActions bool `yaml:"github_actions"`
	GitLabCI      bool `yaml:"gitlab_ci"`
	Conda         bool `yaml:"conda"`
	Ollama        bool `yaml:"ollama"`
	DVC           bool `yaml:"dvc"`
}

// Defaults for optional string fields.
const (
	DefaultOllamaModel = "llama2"
)

// namePattern matches valid project names: a letter followed by letters,
// digits, underscores, or hyphens.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// IsValidName reports whether name is a valid project name.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ProjectSpec is the immutable record of a generation request. It is
// constructed once from command-line input, validated, and then consumed
// read-only by every generator.
type ProjectSpec struct {
	Name          string        `yaml:"name"`
	Template      Template      `yaml:"template"`
	PythonVersion PythonVersion `yaml:"python_version"`
	Framework     Framework     `yaml:"framework"`
	Features      Features      `yaml:"features"`
	OllamaModel   string        `yaml:"ollama_model,omitempty"`
	DVCRemote     DVCRemote     `yaml:"dvc_remote,omitempty"`
}

// NewProjectSpec creates a ProjectSpec with all defaults applied.
func NewProjectSpec(name string) ProjectSpec {
	return ProjectSpec{
		Name:          name,
		Template:      TemplateBasic,
		PythonVersion: Python311,
		Framework:     FrameworkLlamaIndex,
		OllamaModel:   DefaultOllamaModel,
		DVCRemote:     RemoteS3,
	}
}

// Validate checks every field of the spec and returns the first violation.
func (s ProjectSpec) Validate() error {
	if s.Name == "" {
		return &SpecError{Field: "name", Message: "project name is required"}
	}
	if !IsValidName(s.Name) {
		return &SpecError{
			Field:   "name",
			Message: "must start with a letter and contain only letters, digits, '_' or '-'",
			Value:   s.Name,
		}
	}
	if !s.Template.IsValid() {
		return &SpecError{Field: "template", Message: "must be one of: basic, advanced", Value: string(s.Template)}
	}
	if !s.PythonVersion.IsValid() {
		return &SpecError{Field: "python", Message: "must be one of: 3.8, 3.9, 3.10, 3.11", Value: string(s.PythonVersion)}
	}
	if !s.Framework.IsValid() {
		return &SpecError{Field: "framework", Message: "must be one of: llamaindex, langchain, both", Value: string(s.Framework)}
	}
	if !s.DVCRemote.IsValid() {
		return &SpecError{Field: "remote", Message: "must be one of: s3, gcs, azure, local", Value: string(s.DVCRemote)}
	}
	return nil
}

// PackageName returns the Python package name derived from the project
// name (hyphens are not valid in Python identifiers).
func (s ProjectSpec) PackageName() string {
	out := make([]byte, len(s.Name))
	for i := 0; i < len(s.Name); i++ {
		c := s.Name[i]
		if c == '-' {
			c = '_'
		} else if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
