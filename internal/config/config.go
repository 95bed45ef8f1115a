// Package config loads user defaults for new projects. Values come from
// a config file (--config, $XDG_CONFIG_HOME/create-project/config.yaml,
// or ~/.create-project.yaml), CREATE_PROJECT_* environment variables,
// and built-in defaults, in that order of precedence.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/genai-devkit/create-project/pkg/models"
)

// Defaults holds the user-configurable default values applied to any
// spec field the command line leaves unset.
type Defaults struct {
	PythonVersion string `mapstructure:"python_version"`
	Framework     string `mapstructure:"framework"`
	OllamaModel   string `mapstructure:"ollama_model"`
	DVCRemote     string `mapstructure:"dvc_remote"`
	Author        string `mapstructure:"author"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file or environment. cfgFile overrides
// the search path when non-empty.
func Load(cfgFile string) Defaults {
	viper.SetDefault("python_version", string(models.Python311))
	viper.SetDefault("framework", string(models.FrameworkLlamaIndex))
	viper.SetDefault("ollama_model", models.DefaultOllamaModel)
	viper.SetDefault("dvc_remote", string(models.RemoteS3))
	viper.SetDefault("author", "")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			viper.AddConfigPath(filepath.Join(xdg, "create-project"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "create-project"))
		}
	}

	viper.SetEnvPrefix("CREATE_PROJECT")
	viper.AutomaticEnv()

	// A missing config file is not an error: defaults and env apply.
	_ = viper.ReadInConfig()

	var d Defaults
	_ = viper.Unmarshal(&d)
	return d
}
