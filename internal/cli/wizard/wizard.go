// Package wizard implements the interactive project setup flow used when
// no project name is given on the command line.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/genai-devkit/create-project/pkg/models"
)

// ErrCancelled indicates the user aborted the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Result carries the answers collected by the wizard.
type Result struct {
	Spec   models.ProjectSpec
	Author string
}

// Run executes the wizard seeded with default answers and returns the
// completed result. Each question runs as its own huh.Form so later
// questions can be skipped based on earlier answers.
func Run(seed Result) (*Result, error) {
	result := &seed
	theme := newWizardTheme()

	var selectedFeatures []string
	steps := []struct {
		build func() *huh.Form
		after func()
		skip  func() bool
	}{
		{build: func() *huh.Form { return nameForm(result, theme) }},
		{build: func() *huh.Form { return templateForm(result, theme) }},
		{build: func() *huh.Form { return pythonForm(result, theme) }},
		{build: func() *huh.Form { return frameworkForm(result, theme) }},
		{
			build: func() *huh.Form { return featuresForm(&selectedFeatures, theme) },
			after: func() { applyFeatures(selectedFeatures, &result.Spec.Features) },
		},
		{
			build: func() *huh.Form { return ollamaModelForm(result, theme) },
			skip:  func() bool { return !result.Spec.Features.Ollama },
		},
		{
			build: func() *huh.Form { return dvcRemoteForm(result, theme) },
			skip:  func() bool { return !result.Spec.Features.DVC },
		},
		{build: func() *huh.Form { return authorForm(result, theme) }},
	}

	for _, step := range steps {
		if step.skip != nil && step.skip() {
			continue
		}
		if err := step.build().Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		if step.after != nil {
			step.after()
		}
	}

	result.Spec.Name = strings.TrimSpace(result.Spec.Name)
	result.Author = strings.TrimSpace(result.Author)
	if result.Spec.OllamaModel == "" {
		result.Spec.OllamaModel = models.DefaultOllamaModel
	}

	return result, nil
}

func nameForm(result *Result, theme *huh.Theme) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Description("Letters, digits, '_' and '-'; must start with a letter.").
			Value(&result.Spec.Name).
			Validate(func(val string) error {
				if !models.IsValidName(strings.TrimSpace(val)) {
					return errors.New("must start with a letter and contain only letters, digits, '_' or '-'")
				}
				return nil
			}),
	)).WithTheme(theme).WithAccessible(false)
}

func templateForm(result *Result, theme *huh.Theme) *huh.Form {
	opts := make([]huh.Option[models.Template], 0, 2)
	for _, t := range models.ValidTemplates() {
		opts = append(opts, huh.NewOption(string(t), t))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[models.Template]().
			Title("Project template").
			Options(opts...).
			Value(&result.Spec.Template),
	)).WithTheme(theme).WithAccessible(false)
}

func pythonForm(result *Result, theme *huh.Theme) *huh.Form {
	opts := make([]huh.Option[models.PythonVersion], 0, 4)
	for _, v := range models.ValidPythonVersions() {
		opts = append(opts, huh.NewOption("Python "+string(v), v))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[models.PythonVersion]().
			Title("Python version").
			Options(opts...).
			Value(&result.Spec.PythonVersion),
	)).WithTheme(theme).WithAccessible(false)
}

func frameworkForm(result *Result, theme *huh.Theme) *huh.Form {
	labels := map[models.Framework]string{
		models.FrameworkLlamaIndex: "LlamaIndex",
		models.FrameworkLangChain:  "LangChain",
		models.FrameworkBoth:       "Both",
	}
	opts := make([]huh.Option[models.Framework], 0, 3)
	for _, f := range models.ValidFrameworks() {
		opts = append(opts, huh.NewOption(labels[f], f))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[models.Framework]().
			Title("GenAI framework").
			Options(opts...).
			Value(&result.Spec.Framework),
	)).WithTheme(theme).WithAccessible(false)
}

// feature identifiers used by the multi-select.
const (
	featDocker = "docker"
	featSphinx = "sphinx"
	featGitHub = "github-actions"
	featGitLab = "gitlab-ci"
	featConda  = "conda"
	featOllama = "ollama"
	featDVC    = "dvc"
)

func featuresForm(selected *[]string, theme *huh.Theme) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Optional features").
			Description("Space toggles, enter confirms.").
			Options(
				huh.NewOption("Docker (Dockerfile, compose, helper scripts)", featDocker),
				huh.NewOption("Sphinx documentation", featSphinx),
				huh.NewOption("GitHub Actions workflows", featGitHub),
				huh.NewOption("GitLab CI pipeline", featGitLab),
				huh.NewOption("Conda environment", featConda),
				huh.NewOption("Ollama client stub", featOllama),
				huh.NewOption("DVC data versioning", featDVC),
			).
			Value(selected),
	)).WithTheme(theme).WithAccessible(false)
}

// applyFeatures translates the multi-select answer to the feature flags.
func applyFeatures(selected []string, f *models.Features) {
	*f = models.Features{}
	for _, s := range selected {
		switch s {
		case featDocker:
			f.Docker = true
		case featSphinx:
			f.Sphinx = true
		case featGitHub:
			f.GitHubActions = true
		case featGitLab:
			f.GitLabCI = true
		case featConda:
			f.Conda = true
		case featOllama:
			f.Ollama = true
		case featDVC:
			f.DVC = true
		}
	}
}

func ollamaModelForm(result *Result, theme *huh.Theme) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Ollama model").
			Description("Default model for the generated client.").
			Placeholder(models.DefaultOllamaModel).
			Value(&result.Spec.OllamaModel),
	)).WithTheme(theme).WithAccessible(false)
}

func dvcRemoteForm(result *Result, theme *huh.Theme) *huh.Form {
	labels := map[models.DVCRemote]string{
		models.RemoteS3:    "Amazon S3",
		models.RemoteGCS:   "Google Cloud Storage",
		models.RemoteAzure: "Azure Blob Storage",
		models.RemoteLocal: "Local directory",
	}
	opts := make([]huh.Option[models.DVCRemote], 0, 4)
	for _, r := range models.ValidDVCRemotes() {
		opts = append(opts, huh.NewOption(labels[r], r))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[models.DVCRemote]().
			Title("DVC remote storage").
			Options(opts...).
			Value(&result.Spec.DVCRemote),
	)).WithTheme(theme).WithAccessible(false)
}

func authorForm(result *Result, theme *huh.Theme) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Author").
			Description("Recorded in pyproject.toml and the docs. Leave empty to skip.").
			Value(&result.Author),
	)).WithTheme(theme).WithAccessible(false)
}

// newWizardTheme creates a huh.Theme with the create-project palette.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
