// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lkeegan/flake8-nb/pkg/types"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "flake8", cfg.Checker.Command)
	assert.Empty(t, cfg.Checker.Args)
	assert.Equal(t, DefaultExclude, cfg.Exclude)
	assert.Equal(t, types.OutputText, cfg.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestInitReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flake8-nb.yaml")
	content := `checker:
  command: /opt/venv/bin/flake8
  args: ["--max-line-length=100", "--select=E,F"]
exclude:
  - "**/scratch/**"
format: json
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/opt/venv/bin/flake8", cfg.Checker.Command)
	assert.Equal(t, []string{"--max-line-length=100", "--select=E,F"}, cfg.Checker.Args)
	assert.Equal(t, []string{"**/scratch/**"}, cfg.Exclude)
	assert.Equal(t, types.OutputJSON, cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitMissingExplicitFile(t *testing.T) {
	v := viper.New()
	err := Init(v, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestInitEnvironmentOverride(t *testing.T) {
	t.Setenv("FLAKE8_NB_FORMAT", "yaml")
	t.Setenv("FLAKE8_NB_CHECKER_COMMAND", "flake8-custom")

	path := filepath.Join(t.TempDir(), "flake8-nb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, types.OutputYAML, cfg.Format)
	assert.Equal(t, "flake8-custom", cfg.Checker.Command)
}

func TestValidate(t *testing.T) {
	valid := types.Config{
		Checker: types.CheckerConfig{Command: "flake8"},
		Format:  types.OutputText,
		Log:     types.LogConfig{Level: "info", Format: "text"},
	}
	require.NoError(t, Validate(valid))

	tests := []struct {
		name   string
		mutate func(*types.Config)
		errMsg string
	}{
		{"bad format", func(c *types.Config) { c.Format = "xml" }, "unsupported format"},
		{"empty command", func(c *types.Config) { c.Checker.Command = "" }, "checker.command"},
		{"bad log level", func(c *types.Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"bad log format", func(c *types.Config) { c.Log.Format = "xml" }, "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
