// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lkeegan/flake8-nb/internal/checker"
	"github.com/lkeegan/flake8-nb/internal/config"
	"github.com/lkeegan/flake8-nb/internal/discover"
	"github.com/lkeegan/flake8-nb/internal/lint"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Lint notebooks with the native checker",
	Long: `Check finds notebooks (files, directories searched recursively, or glob
patterns), transpiles their code cells, runs the checker on the result and
reports findings per cell. The exit status is 1 when findings exist or a
notebook could not be checked.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths, err := discover.Notebooks(args, cfg.Exclude)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no notebooks found")
	}

	summary, err := lint.Run(cmd.Context(), checker.New(cfg.Checker), paths, cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d notebook(s) could not be checked", summary.Failed)
	}
	if summary.HasFindings() {
		return errFindings
	}
	return nil
}

func init() {
	flags := checkCmd.Flags()
	flags.String("checker", "", "checker executable (default flake8)")
	flags.StringSlice("checker-arg", nil, "extra argument passed to the checker (repeatable)")
	flags.StringSlice("exclude", nil, "doublestar pattern of notebooks to skip (repeatable)")

	viper.BindPFlag(config.KeyCheckerCommand, flags.Lookup("checker"))
	viper.BindPFlag(config.KeyCheckerArgs, flags.Lookup("checker-arg"))
	viper.BindPFlag(config.KeyExclude, flags.Lookup("exclude"))

	rootCmd.AddCommand(checkCmd)
}
