package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/genai-devkit/create-project/internal/config"
	"github.com/genai-devkit/create-project/pkg/models"
)

// newFlagCmd returns a command with the root flag set but an inert RunE,
// so flag validation can be exercised without creating projects.
func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create-project",
		PreRunE: validateCreateFlags,
		RunE:    func(*cobra.Command, []string) error { return nil },
	}
	registerCreateFlags(cmd)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

func TestValidateCreateFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no flags", nil, ""},
		{"valid full set", []string{"-n", "demo", "-t", "basic", "-p", "3.10", "-f", "both", "-r", "local"}, ""},
		{"bad name", []string{"-n", "2fast"}, "invalid --name"},
		{"bad template", []string{"-n", "demo", "-t", "fancy"}, "invalid --template"},
		{"bad python", []string{"-n", "demo", "-p", "2.7"}, "invalid --python"},
		{"bad framework", []string{"-n", "demo", "-f", "torch"}, "invalid --framework"},
		{"bad remote", []string{"-n", "demo", "-r", "ftp"}, "invalid --remote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newFlagCmd()
			cmd.SetArgs(tt.args)
			err := cmd.Execute()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Execute(%v) error = %v, want nil", tt.args, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Execute(%v) error = %v, want containing %q", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestBuildSpec_FlagsOverrideConfig(t *testing.T) {
	cmd := newFlagCmd()
	cmd.SetArgs([]string{"-n", "demo", "-p", "3.9", "-o", "-v", "-m", "codellama"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	defaults := config.Defaults{
		PythonVersion: "3.10",
		Framework:     "langchain",
		OllamaModel:   "llama2",
		DVCRemote:     "azure",
	}
	spec := buildSpec(cmd, defaults)

	if spec.Name != "demo" {
		t.Errorf("Name = %q", spec.Name)
	}
	// Flag wins over config.
	if spec.PythonVersion != models.Python39 {
		t.Errorf("PythonVersion = %q, want 3.9", spec.PythonVersion)
	}
	// Config wins over built-in default.
	if spec.Framework != models.FrameworkLangChain {
		t.Errorf("Framework = %q, want langchain", spec.Framework)
	}
	if spec.DVCRemote != models.RemoteAzure {
		t.Errorf("DVCRemote = %q, want azure", spec.DVCRemote)
	}
	if spec.OllamaModel != "codellama" {
		t.Errorf("OllamaModel = %q, want codellama", spec.OllamaModel)
	}
	if !spec.Features.Ollama || !spec.Features.DVC || spec.Features.Docker {
		t.Errorf("Features = %+v", spec.Features)
	}
}

func TestBuildSpec_Defaults(t *testing.T) {
	cmd := newFlagCmd()
	cmd.SetArgs([]string{"-n", "demo"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	spec := buildSpec(cmd, config.Defaults{})
	if err := spec.Validate(); err != nil {
		t.Errorf("default spec invalid: %v", err)
	}
	if spec.Template != models.TemplateBasic || spec.PythonVersion != models.Python311 {
		t.Errorf("spec = %+v", spec)
	}
	if spec.Features != (models.Features{}) {
		t.Errorf("Features = %+v, want all off", spec.Features)
	}
}

func TestRootCmd_DVCShorthandStaysBound(t *testing.T) {
	// -v belongs to --dvc; the auto version flag must not claim it.
	flag := rootCmd.Flags().ShorthandLookup("v")
	if flag == nil || flag.Name != "dvc" {
		t.Fatalf("shorthand -v bound to %v, want dvc", flag)
	}
}
