// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves toolchain settings from defaults, an optional
// YAML config file and the environment. The result is a plain types.Config
// so the pipeline never reads the environment itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/typst-report/internal/toolchain"
	"github.com/pdiddy/typst-report/pkg/types"
)

const (
	KeyGenPath   = "gen_path"
	KeyGenBinary = "gen_binary"
	KeyPandoc    = "pandoc"
	KeyCargo     = "cargo"

	// EnvGenPath overrides the generator source directory.
	EnvGenPath = "TYPST_GEN_PATH"
	// EnvPrefix prefixes the remaining environment overrides (TYPST_REPORT_PANDOC, ...).
	EnvPrefix = "TYPST_REPORT"

	// DefaultGenPath is the generator source directory relative to the working directory.
	DefaultGenPath = "./typst_gen/"

	configName = "typst-report"
)

// Setup registers defaults and environment bindings on v.
func Setup(v *viper.Viper) error {
	v.SetDefault(KeyGenPath, DefaultGenPath)
	v.SetDefault(KeyGenBinary, toolchain.DefaultGenBinary)
	v.SetDefault(KeyPandoc, toolchain.DefaultPandocBin)
	v.SetDefault(KeyCargo, toolchain.DefaultCargoBin)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv(KeyGenPath, EnvGenPath); err != nil {
		return fmt.Errorf("binding %s: %w", EnvGenPath, err)
	}
	return nil
}

// ReadFile loads the config file into v and returns the path used. With an
// empty cfgFile it searches ./typst-report.yaml and
// ~/.config/typst-report/config.yaml; finding neither is not an error.
// An explicit cfgFile must exist.
func ReadFile(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load resolves a types.Config from v.
func Load(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		GenPath:   v.GetString(KeyGenPath),
		GenBinary: v.GetString(KeyGenBinary),
		PandocBin: v.GetString(KeyPandoc),
		CargoBin:  v.GetString(KeyCargo),
	}
	if cfg.GenPath == "" {
		return types.Config{}, fmt.Errorf("%s must not be empty", KeyGenPath)
	}
	if cfg.GenBinary == "" {
		return types.Config{}, fmt.Errorf("%s must not be empty", KeyGenBinary)
	}
	return cfg, nil
}

// DefaultTemplatePath returns template/template.typ under the working directory.
func DefaultTemplatePath(getwd func() (string, error)) (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return filepath.Join(cwd, "template", "template.typ"), nil
}
