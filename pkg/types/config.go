// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how reports are written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// CheckerConfig holds settings for invoking the native checker.
type CheckerConfig struct {
	// Command is the checker executable (default "flake8").
	Command string `json:"command" yaml:"command" mapstructure:"command"`

	// Args are extra arguments passed before the stdin marker.
	Args []string `json:"args,omitempty" yaml:"args,omitempty" mapstructure:"args"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default "info").
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default "text").
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings of the flake8-nb CLI.
type Config struct {
	Checker CheckerConfig `json:"checker" yaml:"checker" mapstructure:"checker"`

	// Exclude lists doublestar patterns of notebooks to skip.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" mapstructure:"exclude"`

	// Format selects the report format.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}
