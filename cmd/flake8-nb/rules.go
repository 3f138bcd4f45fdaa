// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/lkeegan/flake8-nb/internal/notebook"
	"github.com/lkeegan/flake8-nb/internal/report"
	"github.com/lkeegan/flake8-nb/internal/transpile"
)

var rulesCmd = &cobra.Command{
	Use:   "rules <notebook>",
	Short: "Show the reconciled suppression rules of every code cell",
	Long: `Rules prints, per code cell, the rule mapping built from metadata tags and
inline flake8-noqa tags, together with any malformed tags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nb, err := notebook.Load(args[0])
		if err != nil {
			return err
		}
		return report.Rules(cmd.OutOrStdout(), cfg.Format, transpile.Notebook(nb, args[0]))
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
