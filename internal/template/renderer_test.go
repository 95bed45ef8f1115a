package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRender_Substitution(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.txt.tmpl": {Data: []byte("Hello, {{.ProjectName}}!")},
	}
	r := NewRenderer(fsys)

	out, err := r.Render("greeting.txt.tmpl", &Context{ProjectName: "demo"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(out) != "Hello, demo!" {
		t.Errorf("Render() = %q", out)
	}
}

func TestRender_NotFound(t *testing.T) {
	r := NewRenderer(fstest.MapFS{})

	_, err := r.Render("missing.tmpl", &Context{})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound", err)
	}
}

func TestRender_MissingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmpl": {Data: []byte("{{.NoSuchField}}")},
	}
	r := NewRenderer(fsys)

	_, err := r.Render("bad.tmpl", struct{ Known string }{})
	if !errors.Is(err, ErrMissingTemplateKey) {
		t.Errorf("error = %v, want ErrMissingTemplateKey", err)
	}
}

func TestRender_AllowsShellAndCITokens(t *testing.T) {
	// Generated Makefiles, shell scripts, and CI files carry $(VAR), $VAR,
	// and "${{ ... }}" forms that must not trip the leftover-token check.
	fsys := fstest.MapFS{
		"mixed.tmpl": {Data: []byte(
			"VAR=$(MAKEFILE_LIST)\nshell=$HOME ${PATH}\nci={{gh \"matrix.python-version\"}}\n",
		)},
	}
	r := NewRenderer(fsys)

	out, err := r.Render("mixed.tmpl", &Context{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), "${{ matrix.python-version }}") {
		t.Errorf("gh func output missing: %q", out)
	}
}

func TestRender_Funcs(t *testing.T) {
	fsys := fstest.MapFS{
		"funcs.tmpl": {Data: []byte("{{snake \"a-b-c\"}} {{title \"my-rag_app\"}} {{underline \"abc\"}}")},
	}
	r := NewRenderer(fsys)

	out, err := r.Render("funcs.tmpl", &Context{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "a_b_c My Rag App ==="
	if string(out) != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}
