// Package config loads the session configuration: prompt strings, the
// compiler invocation, and the boilerplate preamble. A default
// configuration is embedded; a user file in the config directory
// overrides it field by field.
package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"igcpp/errs"
)

//go:embed config.yaml
var defaultConfig []byte

type Compiler struct {
	Command    string   `yaml:"command"`
	Std        string   `yaml:"std"`
	Flags      []string `yaml:"flags"`
	MinVersion string   `yaml:"min_version"`
}

type Config struct {
	Prompt             string   `yaml:"prompt"`
	ContinuationPrompt string   `yaml:"continuation_prompt"`
	ListTail           int      `yaml:"list_tail"`
	Compiler           Compiler `yaml:"compiler"`
	Preamble           string   `yaml:"preamble"`
}

// Load returns the embedded defaults, overlaid with the user's
// config.yaml if one exists.
func Load() (*Config, error) {
	cfg, err := parse(defaultConfig)
	if err != nil {
		return nil, errs.NewInternalError("failed to parse embedded config").Wrap(err)
	}

	userPath, err := userConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(userPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errs.NewInternalError("failed to read user config").Wrap(err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.NewInternalError("failed to parse user config").Wrap(err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// userConfigPath returns the path to config.yaml in the user's config
// directory, creating the igcpp subdirectory on the way.
func userConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errs.NewInternalError("failed to get user config directory").Wrap(err)
	}
	igcppConfigDir := filepath.Join(configDir, "igcpp")
	if err := os.MkdirAll(igcppConfigDir, 0755); err != nil {
		return "", errs.NewInternalError("failed to create igcpp config directory").Wrap(err)
	}
	return filepath.Join(igcppConfigDir, "config.yaml"), nil
}
