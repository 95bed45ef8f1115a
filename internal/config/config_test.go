package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_BuiltinDefaults(t *testing.T) {
	reset(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	d := Load("")
	if d.PythonVersion != "3.11" {
		t.Errorf("PythonVersion = %q, want 3.11", d.PythonVersion)
	}
	if d.Framework != "llamaindex" {
		t.Errorf("Framework = %q, want llamaindex", d.Framework)
	}
	if d.OllamaModel != "llama2" {
		t.Errorf("OllamaModel = %q, want llama2", d.OllamaModel)
	}
	if d.DVCRemote != "s3" {
		t.Errorf("DVCRemote = %q, want s3", d.DVCRemote)
	}
	if d.Author != "" {
		t.Errorf("Author = %q, want empty", d.Author)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	reset(t)

	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	content := "python_version: \"3.9\"\nframework: langchain\nauthor: Ada Lovelace\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	d := Load(cfg)
	if d.PythonVersion != "3.9" {
		t.Errorf("PythonVersion = %q, want 3.9", d.PythonVersion)
	}
	if d.Framework != "langchain" {
		t.Errorf("Framework = %q, want langchain", d.Framework)
	}
	if d.Author != "Ada Lovelace" {
		t.Errorf("Author = %q, want Ada Lovelace", d.Author)
	}
	// Unset keys keep their built-in defaults.
	if d.OllamaModel != "llama2" {
		t.Errorf("OllamaModel = %q, want llama2", d.OllamaModel)
	}
}

func TestLoad_XDGSearchPath(t *testing.T) {
	reset(t)

	xdg := t.TempDir()
	appDir := filepath.Join(xdg, "create-project")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte("dvc_remote: gcs\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if d := Load(""); d.DVCRemote != "gcs" {
		t.Errorf("DVCRemote = %q, want gcs", d.DVCRemote)
	}
}

func TestLoad_Environment(t *testing.T) {
	reset(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CREATE_PROJECT_OLLAMA_MODEL", "mistral")

	if d := Load(""); d.OllamaModel != "mistral" {
		t.Errorf("OllamaModel = %q, want mistral", d.OllamaModel)
	}
}
