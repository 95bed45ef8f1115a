package models

import (
	"errors"
	"testing"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple underscore", "my_project", true},
		{"digit in body", "Project2", true},
		{"mixed separators", "a-b_c", true},
		{"single letter", "x", true},
		{"leading digit", "2project", false},
		{"embedded space", "my project", false},
		{"empty", "", false},
		{"leading hyphen", "-app", false},
		{"dot", "my.app", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewProjectSpec_Defaults(t *testing.T) {
	spec := NewProjectSpec("demo")

	if spec.Template != TemplateBasic {
		t.Errorf("Template = %q, want %q", spec.Template, TemplateBasic)
	}
	if spec.PythonVersion != Python311 {
		t.Errorf("PythonVersion = %q, want %q", spec.PythonVersion, Python311)
	}
	if spec.Framework != FrameworkLlamaIndex {
		t.Errorf("Framework = %q, want %q", spec.Framework, FrameworkLlamaIndex)
	}
	if spec.OllamaModel != DefaultOllamaModel {
		t.Errorf("OllamaModel = %q, want %q", spec.OllamaModel, DefaultOllamaModel)
	}
	if spec.DVCRemote != RemoteS3 {
		t.Errorf("DVCRemote = %q, want %q", spec.DVCRemote, RemoteS3)
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestValidate_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProjectSpec)
		field  string
	}{
		{"empty name", func(s *ProjectSpec) { s.Name = "" }, "name"},
		{"bad name", func(s *ProjectSpec) { s.Name = "2project" }, "name"},
		{"bad template", func(s *ProjectSpec) { s.Template = "fancy" }, "template"},
		{"unsupported python", func(s *ProjectSpec) { s.PythonVersion = "3.12" }, "python"},
		{"bad framework", func(s *ProjectSpec) { s.Framework = "haystack" }, "framework"},
		{"bad remote", func(s *ProjectSpec) { s.DVCRemote = "ftp" }, "remote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := NewProjectSpec("demo")
			tt.mutate(&spec)

			err := spec.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("errors.Is(err, ErrInvalidSpec) = false for %v", err)
			}
			var specErr *SpecError
			if !errors.As(err, &specErr) {
				t.Fatalf("error %v is not a *SpecError", err)
			}
			if specErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", specErr.Field, tt.field)
			}
		})
	}
}

func TestValidate_AcceptsAllEnumValues(t *testing.T) {
	for _, ver := range ValidPythonVersions() {
		for _, fw := range ValidFrameworks() {
			for _, remote := range ValidDVCRemotes() {
				spec := NewProjectSpec("demo")
				spec.PythonVersion = ver
				spec.Framework = fw
				spec.DVCRemote = remote
				if err := spec.Validate(); err != nil {
					t.Errorf("Validate(%s/%s/%s) = %v, want nil", ver, fw, remote, err)
				}
			}
		}
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"demo", "demo"},
		{"my-rag-app", "my_rag_app"},
		{"Project2", "project2"},
		{"a-b_c", "a_b_c"},
	}

	for _, tt := range tests {
		spec := NewProjectSpec(tt.in)
		if got := spec.PackageName(); got != tt.want {
			t.Errorf("PackageName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
