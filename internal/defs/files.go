// Package defs holds file names, directory names, and permission bits
// shared across the generator packages.
package defs

import "io/fs"

// Permission bits for generated artifacts.
const (
	// DirPerm is the mode for created directories.
	DirPerm fs.FileMode = 0o755

	// FilePerm is the mode for regular generated files.
	FilePerm fs.FileMode = 0o644

	// ScriptPerm is the mode for generated shell scripts.
	ScriptPerm fs.FileMode = 0o755
)

// Common file names in the generated project root.
const (
	// Makefile is the task-runner file shared by several generators.
	Makefile = "Makefile"

	// GitIgnore is the ignore file shared by several generators.
	GitIgnore = ".gitignore"

	// Requirements is the pip dependency manifest.
	Requirements = "requirements.txt"

	// PyProject is the Python build/tool configuration file.
	PyProject = "pyproject.toml"

	// PreCommitConfig is the pre-commit hook configuration.
	PreCommitConfig = ".pre-commit-config.yaml"

	// ReadmeMD is the project README.
	ReadmeMD = "README.md"

	// EnvironmentYML is the conda environment file.
	EnvironmentYML = "environment.yml"

	// MetadataYAML records the spec a project was generated from.
	MetadataYAML = ".create-project.yaml"
)

// Docker artifact names.
const (
	Dockerfile    = "Dockerfile"
	DockerfileDev = "Dockerfile.dev"
	ComposeYML    = "docker-compose.yml"
	ComposeDevYML = "docker-compose.dev.yml"
	DockerIgnore  = ".dockerignore"
)

// CI artifact names.
const (
	WorkflowsDir = ".github/workflows"
	GitLabCIYML  = ".gitlab-ci.yml"
)

// DVC artifact names.
const (
	DVCDir      = ".dvc"
	DVCConfig   = ".dvc/config"
	DVCPipeline = "dvc.yaml"
	DVCParams   = "params.yaml"
)
