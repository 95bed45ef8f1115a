package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// snake converts hyphens to underscores (Python identifier form).
	"snake": func(s string) string {
		return strings.ReplaceAll(s, "-", "_")
	},
	// title renders a project slug as a human-readable title,
	// e.g. "my-rag_app" -> "My Rag App".
	"title": func(s string) string {
		words := strings.FieldsFunc(s, func(r rune) bool {
			return r == '-' || r == '_'
		})
		return cases.Title(language.English).String(strings.Join(words, " "))
	},
	// underline produces an RST title underline of matching width.
	"underline": func(s string) string {
		return strings.Repeat("=", len(s))
	},
	// gh emits a GitHub Actions expression. Workflow templates use it so
	// literal "${{ ... }}" never collides with Go template syntax.
	"gh": func(expr string) string {
		return "${{ " + expr + " }}"
	},
}

// leftoverTokenPattern detects Go template field references that survived
// rendering, e.g. "{{.ProjectName}}". Deliberately narrow: generated
// Makefiles, shell scripts, and CI files legitimately contain $(VAR),
// $VAR, and "${{ ... }}" forms.
var leftoverTokenPattern = regexp.MustCompile(`\{\{-?\s*\.[A-Za-z_][A-Za-z0-9_.]*\s*-?\}\}`)

// Renderer renders embedded Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the embedded FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if template tokens remain afterwards.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use
// testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := leftoverTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), templateName)
	}

	return result, nil
}
