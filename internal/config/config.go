// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves flake8-nb settings from the config file,
// FLAKE8_NB_* environment variables and command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lkeegan/flake8-nb/internal/checker"
	"github.com/lkeegan/flake8-nb/internal/logging"
	"github.com/lkeegan/flake8-nb/pkg/types"
)

const (
	// Name is the config file base name (flake8-nb.yaml).
	Name = "flake8-nb"
	// EnvPrefix prefixes environment overrides, e.g. FLAKE8_NB_FORMAT.
	EnvPrefix = "FLAKE8_NB"
)

// Keys understood by Load.
const (
	KeyCheckerCommand = "checker.command"
	KeyCheckerArgs    = "checker.args"
	KeyExclude        = "exclude"
	KeyFormat         = "format"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

// envReplacer maps nested keys onto variable names: checker.command
// becomes FLAKE8_NB_CHECKER_COMMAND.
var envReplacer = strings.NewReplacer(".", "_", "-", "_")

// DefaultExclude skips Jupyter checkpoint copies.
var DefaultExclude = []string{"**/.ipynb_checkpoints/**"}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCheckerCommand, checker.DefaultCommand)
	v.SetDefault(KeyCheckerArgs, []string{})
	v.SetDefault(KeyExclude, DefaultExclude)
	v.SetDefault(KeyFormat, string(types.OutputText))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Init points v at cfgFile, or at the default search path
// (./flake8-nb.yaml, ~/.config/flake8-nb/flake8-nb.yaml), and enables
// environment overrides. A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		Checker: types.CheckerConfig{
			Command: v.GetString(KeyCheckerCommand),
			Args:    v.GetStringSlice(KeyCheckerArgs),
		},
		Exclude: v.GetStringSlice(KeyExclude),
		Format:  types.OutputFormat(v.GetString(KeyFormat)),
		Log: types.LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}
	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func Validate(cfg types.Config) error {
	switch cfg.Format {
	case types.OutputText, types.OutputJSON, types.OutputYAML:
	default:
		return fmt.Errorf("unsupported format %q: use text, json or yaml", cfg.Format)
	}
	if cfg.Checker.Command == "" {
		return fmt.Errorf("checker.command must not be empty")
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format %q: must be text or json", cfg.Log.Format)
	}
	return nil
}
