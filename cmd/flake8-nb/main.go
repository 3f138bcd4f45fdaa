// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the flake8-nb CLI.
// It lints Jupyter notebooks with an unmodified flake8 by transpiling every
// code cell into annotated Python text, honouring flake8-noqa cell tags.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lkeegan/flake8-nb/internal/config"
	"github.com/lkeegan/flake8-nb/internal/logging"
	"github.com/lkeegan/flake8-nb/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the resolved configuration, loaded before any subcommand runs.
var cfg types.Config

// errFindings signals a run that worked but reported problems.
var errFindings = errors.New("problems found")

// rootCmd is the base command for the flake8-nb CLI.
var rootCmd = &cobra.Command{
	Use:   "flake8-nb",
	Short: "Lint Jupyter notebooks with flake8",
	Long: `flake8-nb feeds the code cells of Jupyter notebooks to flake8 and reports
findings per cell ("notebook.ipynb#In[3]:2:1: F401 ...").

Suppress findings with cell tags or inline comments:

  flake8-noqa-cell                  all codes, whole cell
  flake8-noqa-cell-E402-F401        listed codes, whole cell
  flake8-noqa-line-3                all codes, line 3 of the cell
  flake8-noqa-line-3-E402           listed codes, line 3 of the cell

Native "# noqa" comments keep working and are merged with tag rules.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./flake8-nb.yaml or ~/.config/flake8-nb/flake8-nb.yaml)")
	flags.String("format", "", "output format: text, json or yaml")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")

	viper.BindPFlag(config.KeyFormat, flags.Lookup("format"))
	viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	viper.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
}

// configErr keeps a config file read failure until a command runs.
var configErr error

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	configErr = config.Init(viper.GetViper(), cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
