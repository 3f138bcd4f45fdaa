// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/lkeegan/flake8-nb/internal/logging"
	"github.com/lkeegan/flake8-nb/internal/notebook"
	"github.com/lkeegan/flake8-nb/internal/transpile"
)

var transpileCmd = &cobra.Command{
	Use:   "transpile <notebook>",
	Short: "Print the annotated text handed to the checker",
	Long: `Transpile prints the intermediate text of a notebook: one block per code
cell, headed by "#In[<n>]", with every line carrying its merged noqa comment.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranspile,
}

func runTranspile(cmd *cobra.Command, args []string) error {
	nb, err := notebook.Load(args[0])
	if err != nil {
		return err
	}
	doc := transpile.Notebook(nb, args[0])

	logger := logging.FromContext(cmd.Context())
	for _, w := range doc.Warnings() {
		logger.Warn("invalid flake8 tag", "kind", "InvalidTagWarning", "tag", w.Tag, "expected", w.Expected)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), doc.Text)
	return err
}

func init() {
	rootCmd.AddCommand(transpileCmd)
}
