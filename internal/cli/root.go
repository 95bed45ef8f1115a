// Package cli implements the create-project command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/genai-devkit/create-project/internal/cli/wizard"
	"github.com/genai-devkit/create-project/internal/config"
	"github.com/genai-devkit/create-project/internal/core/project"
	"github.com/genai-devkit/create-project/internal/generator"
	"github.com/genai-devkit/create-project/internal/gitops"
	"github.com/genai-devkit/create-project/internal/template"
	"github.com/genai-devkit/create-project/pkg/models"
	"github.com/genai-devkit/create-project/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "create-project",
	Short: "Scaffold a new GenAI Python project",
	Long: `create-project scaffolds a complete GenAI Python project: source
layout, dependency manifests, Makefile, pre-commit hooks, and optional
Docker, Sphinx, CI, conda, Ollama, and DVC integrations.

Run without flags for the interactive wizard, or pass --name and
feature flags for non-interactive use:

  create-project -n my-rag-app -d -o -m mistral
  create-project --name pipeline --dvc --remote gcs --non-interactive`,
	Version: version.GetVersion(),
	PreRunE: validateCreateFlags,
	RunE:    runCreate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("create-project %s\n", version.GetVersion()))
	registerCreateFlags(rootCmd)
}

// registerCreateFlags declares the full flag surface on cmd.
func registerCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Project name (omit to run the wizard)")
	cmd.Flags().StringP("template", "t", "", "Project template: basic or advanced (default: basic)")
	cmd.Flags().StringP("python", "p", "", "Python version: 3.8, 3.9, 3.10, or 3.11 (default: 3.11)")
	cmd.Flags().StringP("framework", "f", "", "GenAI framework: llamaindex, langchain, or both (default: llamaindex)")
	cmd.Flags().BoolP("docker", "d", false, "Generate Docker support")
	cmd.Flags().BoolP("sphinx", "s", false, "Generate Sphinx documentation")
	cmd.Flags().BoolP("github-actions", "g", false, "Generate GitHub Actions workflows")
	cmd.Flags().BoolP("gitlab-ci", "l", false, "Generate a GitLab CI pipeline")
	cmd.Flags().BoolP("conda", "c", false, "Generate a conda environment file")
	cmd.Flags().BoolP("ollama", "o", false, "Generate an Ollama client stub")
	cmd.Flags().StringP("model", "m", "", "Ollama model for the client stub (default: llama2)")
	cmd.Flags().BoolP("dvc", "v", false, "Generate a DVC data-versioning setup")
	cmd.Flags().StringP("remote", "r", "", "DVC remote storage: s3, gcs, azure, or local (default: s3)")
	cmd.Flags().String("dir", ".", "Parent directory the project is created in")
	cmd.Flags().String("config", "", "Path to a defaults config file")
	cmd.Flags().Bool("skip-git", false, "Skip git init and the initial commit")
	cmd.Flags().Bool("non-interactive", false, "Never start the wizard; fail if --name is missing")
	cmd.Flags().Bool("verbose", false, "Enable debug logging")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateCreateFlags validates flag values before execution.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	if name := getStringFlag(cmd, "name"); name != "" && !models.IsValidName(name) {
		return fmt.Errorf("invalid --name value %q: must start with a letter and contain only letters, digits, '_' or '-'", name)
	}
	if tmpl := getStringFlag(cmd, "template"); tmpl != "" && !models.Template(tmpl).IsValid() {
		return fmt.Errorf("invalid --template value %q: must be one of: basic, advanced", tmpl)
	}
	if py := getStringFlag(cmd, "python"); py != "" && !models.PythonVersion(py).IsValid() {
		return fmt.Errorf("invalid --python value %q: must be one of: 3.8, 3.9, 3.10, 3.11", py)
	}
	if fw := getStringFlag(cmd, "framework"); fw != "" && !models.Framework(fw).IsValid() {
		return fmt.Errorf("invalid --framework value %q: must be one of: llamaindex, langchain, both", fw)
	}
	if remote := getStringFlag(cmd, "remote"); remote != "" && !models.DVCRemote(remote).IsValid() {
		return fmt.Errorf("invalid --remote value %q: must be one of: s3, gcs, azure, local", remote)
	}
	return nil
}

// buildSpec assembles the ProjectSpec from config defaults and flags.
// Flags override config, config overrides built-in defaults.
func buildSpec(cmd *cobra.Command, defaults config.Defaults) models.ProjectSpec {
	spec := models.NewProjectSpec(getStringFlag(cmd, "name"))

	if defaults.PythonVersion != "" {
		spec.PythonVersion = models.PythonVersion(defaults.PythonVersion)
	}
	if defaults.Framework != "" {
		spec.Framework = models.Framework(defaults.Framework)
	}
	if defaults.OllamaModel != "" {
		spec.OllamaModel = defaults.OllamaModel
	}
	if defaults.DVCRemote != "" {
		spec.DVCRemote = models.DVCRemote(defaults.DVCRemote)
	}

	if v := getStringFlag(cmd, "template"); v != "" {
		spec.Template = models.Template(v)
	}
	if v := getStringFlag(cmd, "python"); v != "" {
		spec.PythonVersion = models.PythonVersion(v)
	}
	if v := getStringFlag(cmd, "framework"); v != "" {
		spec.Framework = models.Framework(v)
	}
	if v := getStringFlag(cmd, "model"); v != "" {
		spec.OllamaModel = v
	}
	if v := getStringFlag(cmd, "remote"); v != "" {
		spec.DVCRemote = models.DVCRemote(v)
	}

	spec.Features = models.Features{
		Docker:        getBoolFlag(cmd, "docker"),
		Sphinx:        getBoolFlag(cmd, "sphinx"),
		GitHubActions: getBoolFlag(cmd, "github-actions"),
		GitLabCI:      getBoolFlag(cmd, "gitlab-ci"),
		Conda:         getBoolFlag(cmd, "conda"),
		Ollama:        getBoolFlag(cmd, "ollama"),
		DVC:           getBoolFlag(cmd, "dvc"),
	}

	return spec
}

// runCreate executes the project creation workflow.
func runCreate(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if getBoolFlag(cmd, "verbose") {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	defaults := config.Load(getStringFlag(cmd, "config"))
	spec := buildSpec(cmd, defaults)
	author := defaults.Author

	nonInteractive := getBoolFlag(cmd, "non-interactive")
	if spec.Name == "" {
		if nonInteractive || !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("project name is required: pass --name or run interactively")
		}

		PrintBanner(version.GetVersion())
		result, err := wizard.Run(wizard.Result{Spec: spec, Author: author})
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Project creation cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		spec = result.Spec
		author = result.Author
	}

	embeddedFS, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}
	renderer := template.NewRenderer(embeddedFS)

	composer := project.NewComposer(
		generator.DefaultPipeline(renderer),
		gitops.NewRunner(logger),
		logger,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := composer.Compose(ctx, project.ComposeOptions{
		Spec:      spec,
		ParentDir: getStringFlag(cmd, "dir"),
		Author:    author,
		SkipGit:   getBoolFlag(cmd, "skip-git"),
	})
	if err != nil {
		return err
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Location", result.ProjectDir},
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Project "+spec.Name+" created", details...))

	return nil
}
