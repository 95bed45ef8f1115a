package template

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/genai-devkit/create-project/pkg/models"
)

func fullSpec() models.ProjectSpec {
	spec := models.NewProjectSpec("demo-app")
	spec.Framework = models.FrameworkBoth
	spec.Features = models.Features{
		Docker:        true,
		Sphinx:        true,
		GitHubActions: true,
		GitLabCI:      true,
		Conda:         true,
		Ollama:        true,
		DVC:           true,
	}
	return spec
}

func TestNewContext_DerivedFields(t *testing.T) {
	spec := models.NewProjectSpec("my-rag-app")
	spec.PythonVersion = models.Python310

	ctx := NewContext(spec)

	if ctx.PackageName != "my_rag_app" {
		t.Errorf("PackageName = %q", ctx.PackageName)
	}
	if ctx.ProjectTitle != "My Rag App" {
		t.Errorf("ProjectTitle = %q", ctx.ProjectTitle)
	}
	if ctx.PythonTag != "py310" {
		t.Errorf("PythonTag = %q", ctx.PythonTag)
	}
	if !ctx.UseLlamaIndex || ctx.UseLangChain {
		t.Errorf("framework booleans = %v/%v, want true/false", ctx.UseLlamaIndex, ctx.UseLangChain)
	}
}

func TestNewContext_FrameworkBoth(t *testing.T) {
	ctx := NewContext(fullSpec())
	if !ctx.UseLlamaIndex || !ctx.UseLangChain {
		t.Errorf("both framework: booleans = %v/%v, want true/true", ctx.UseLlamaIndex, ctx.UseLangChain)
	}
}

func TestNewContext_Options(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := NewContext(fullSpec(), WithAuthor("Jamie"), WithCreatedAt(ts), WithVersion("v9.9.9"))

	if ctx.Author != "Jamie" {
		t.Errorf("Author = %q", ctx.Author)
	}
	if ctx.CreatedAt != "2025-03-01T12:00:00Z" {
		t.Errorf("CreatedAt = %q", ctx.CreatedAt)
	}
	if ctx.Year != 2025 {
		t.Errorf("Year = %d", ctx.Year)
	}
	if ctx.Version != "v9.9.9" {
		t.Errorf("Version = %q", ctx.Version)
	}
}

// Every embedded template must render without error against a context
// with all features enabled.
func TestEmbeddedTemplates_AllRender(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error = %v", err)
	}
	r := NewRenderer(fsys)
	ctx := NewContext(fullSpec())

	var rendered int
	walkErr := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		if _, renderErr := r.Render(path, ctx); renderErr != nil {
			t.Errorf("Render(%s) error = %v", path, renderErr)
		}
		rendered++
		return nil
	})
	if walkErr != nil {
		t.Fatalf("WalkDir() error = %v", walkErr)
	}
	if rendered < 30 {
		t.Errorf("rendered %d templates, expected the full embedded set", rendered)
	}
}

func TestEmbeddedTemplates_DVCRemoteBlocks(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error = %v", err)
	}
	r := NewRenderer(fsys)

	tests := []struct {
		remote  models.DVCRemote
		want    string
		exclude []string
	}{
		{models.RemoteS3, "url = s3://", []string{"gs://", "azure://"}},
		{models.RemoteGCS, "url = gs://", []string{"s3://", "azure://"}},
		{models.RemoteAzure, "url = azure://", []string{"s3://", "gs://"}},
		{models.RemoteLocal, "url = ../", []string{"s3://", "gs://", "azure://"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.remote), func(t *testing.T) {
			spec := fullSpec()
			spec.DVCRemote = tt.remote
			out, err := r.Render("dvc/config.tmpl", NewContext(spec))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(string(out), tt.want) {
				t.Errorf("config missing %q:\n%s", tt.want, out)
			}
			for _, bad := range tt.exclude {
				if strings.Contains(string(out), bad) {
					t.Errorf("config for %s contains %q:\n%s", tt.remote, bad, out)
				}
			}
		})
	}
}
