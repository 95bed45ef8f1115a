package template

import (
	"embed"
	"io/fs"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/genai-devkit/create-project/pkg/models"
	"github.com/genai-devkit/create-project/pkg/version"
)

//go:embed templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the embedded template filesystem, rooted at
// the templates/ directory.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedFS, "templates")
}

// Context provides data for template rendering during project generation.
// All fields are exported for use with Go's text/template package.
type Context struct {
	// Project identity
	ProjectName  string // slug as given on the command line
	PackageName  string // Python package name (hyphens folded to underscores)
	ProjectTitle string // human-readable title, e.g. "My Rag App"
	Template     string // "basic" or "advanced"; recorded in metadata only
	Description  string
	Author       string

	// Toolchain
	PythonVersion string // e.g. "3.11"
	PythonTag     string // e.g. "py311", for tools that reject dotted versions

	// Framework selection
	Framework     string // "llamaindex", "langchain", "both"
	UseLlamaIndex bool
	UseLangChain  bool

	// Feature flags
	Docker        bool
	Sphinx        bool
	GitHubActions bool
	GitLabCI      bool
	Conda         bool
	Ollama        bool
	DVC           bool

	// Feature parameters
	OllamaModel string
	DVCRemote   string // "s3", "gcs", "azure", "local"

	// Meta
	Version   string // create-project version that generated the tree
	CreatedAt string // RFC 3339 timestamp
	Year      int    // for documentation copyright lines
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithAuthor sets the author name recorded in generated metadata and docs.
func WithAuthor(name string) ContextOption {
	return func(c *Context) {
		if name != "" {
			c.Author = name
		}
	}
}

// WithCreatedAt overrides the creation timestamp (used by tests).
func WithCreatedAt(ts time.Time) ContextOption {
	return func(c *Context) {
		c.CreatedAt = ts.UTC().Format(time.RFC3339)
		c.Year = ts.Year()
	}
}

// WithVersion overrides the recorded tool version.
func WithVersion(v string) ContextOption {
	return func(c *Context) {
		c.Version = v
	}
}

// NewContext derives a render Context from a validated ProjectSpec,
// then applies any provided options.
func NewContext(spec models.ProjectSpec, opts ...ContextOption) *Context {
	now := time.Now().UTC()
	ctx := &Context{
		ProjectName:  spec.Name,
		PackageName:  spec.PackageName(),
		ProjectTitle: titleFromSlug(spec.Name),
		Template:     string(spec.Template),
		Description:  "A GenAI application built with " + frameworkLabel(spec.Framework),
		Author:       "Your Name",

		PythonVersion: string(spec.PythonVersion),
		PythonTag:     "py" + strings.ReplaceAll(string(spec.PythonVersion), ".", ""),

		Framework:     string(spec.Framework),
		UseLlamaIndex: spec.Framework == models.FrameworkLlamaIndex || spec.Framework == models.FrameworkBoth,
		UseLangChain:  spec.Framework == models.FrameworkLangChain || spec.Framework == models.FrameworkBoth,

		Docker:        spec.Features.Docker,
		Sphinx:        spec.Features.Sphinx,
		GitHubActions: spec.Features.GitHubActions,
		GitLabCI:      spec.Features.GitLabCI,
		Conda:         spec.Features.Conda,
		Ollama:        spec.Features.Ollama,
		DVC:           spec.Features.DVC,

		OllamaModel: spec.OllamaModel,
		DVCRemote:   string(spec.DVCRemote),

		Version:   version.GetVersion(),
		CreatedAt: now.Format(time.RFC3339),
		Year:      now.Year(),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// titleFromSlug renders a project slug as a human-readable title.
func titleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// frameworkLabel returns the display name for a framework value.
func frameworkLabel(f models.Framework) string {
	switch f {
	case models.FrameworkLlamaIndex:
		return "LlamaIndex"
	case models.FrameworkLangChain:
		return "LangChain"
	case models.FrameworkBoth:
		return "LlamaIndex and LangChain"
	}
	return string(f)
}
