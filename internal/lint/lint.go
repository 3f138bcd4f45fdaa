// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lint runs the native checker over notebooks: load, transpile,
// check, and map findings back onto cells.
package lint

import (
	"context"
	"fmt"
	"io"

	"github.com/lkeegan/flake8-nb/internal/checker"
	"github.com/lkeegan/flake8-nb/internal/logging"
	"github.com/lkeegan/flake8-nb/internal/notebook"
	"github.com/lkeegan/flake8-nb/internal/report"
	"github.com/lkeegan/flake8-nb/internal/transpile"
	"github.com/lkeegan/flake8-nb/pkg/types"
)

// Summary holds the outcome of a lint run.
type Summary struct {
	Checked     int
	Failed      int
	Diagnostics []types.NotebookDiagnostic
}

// HasFindings reports whether the run produced diagnostics.
func (s Summary) HasFindings() bool {
	return len(s.Diagnostics) > 0
}

// HasFailures reports whether any notebook could not be checked.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Notebook transpiles nb and checks it with r, returning findings in
// notebook coordinates. Malformed tags are logged as warnings.
func Notebook(ctx context.Context, r checker.Runner, nb types.Notebook, displayName string) ([]types.NotebookDiagnostic, error) {
	logger := logging.FromContext(ctx).With("notebook", displayName)

	doc := transpile.Notebook(nb, displayName)
	for _, w := range doc.Warnings() {
		logger.Warn("invalid flake8 tag", "kind", "InvalidTagWarning", "tag", w.Tag, "expected", w.Expected)
	}
	if doc.Text == "" {
		logger.Debug("no code cells to check")
		return nil, nil
	}

	diags, err := r.Check(ctx, displayName, doc.Text)
	if err != nil {
		return nil, err
	}
	mapped := Remap(doc, diags)
	logger.Debug("checked notebook", "cells", len(doc.Blocks), "diagnostics", len(mapped))
	return mapped, nil
}

// Remap translates diagnostics on the intermediate text into notebook
// coordinates. Findings on header lines are dropped.
func Remap(doc transpile.Document, diags []types.Diagnostic) []types.NotebookDiagnostic {
	var out []types.NotebookDiagnostic
	for _, d := range diags {
		loc, ok := doc.Locate(d.Line)
		if !ok {
			continue
		}
		out = append(out, types.NotebookDiagnostic{
			InputName: loc.InputName,
			Cell:      loc.CellIndex,
			Line:      loc.Line,
			Column:    d.Column,
			Code:      d.Code,
			Message:   d.Message,
		})
	}
	return out
}

// Run checks every notebook in paths, writing findings to w as they are
// produced. A notebook that cannot be loaded or checked is counted as
// failed and reported to the logger; the run continues.
func Run(ctx context.Context, r checker.Runner, paths []string, format types.OutputFormat, w io.Writer) (Summary, error) {
	logger := logging.FromContext(ctx)
	if !r.Available() {
		return Summary{}, fmt.Errorf("checker %s not found on PATH", r.Name())
	}

	var summary Summary
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		nb, err := notebook.Load(path)
		if err != nil {
			logger.Error("skipping notebook", "path", path, "error", err)
			summary.Failed++
			continue
		}
		diags, err := Notebook(ctx, r, nb, path)
		if err != nil {
			logger.Error("checking notebook failed", "path", path, "error", err)
			summary.Failed++
			continue
		}
		summary.Checked++
		summary.Diagnostics = append(summary.Diagnostics, diags...)
		if format == types.OutputText || format == "" {
			if err := report.Diagnostics(w, format, diags); err != nil {
				return summary, err
			}
		}
	}

	if format != types.OutputText && format != "" {
		if err := report.Diagnostics(w, format, summary.Diagnostics); err != nil {
			return summary, err
		}
	}
	logger.Info("lint finished", "checked", summary.Checked, "failed", summary.Failed, "diagnostics", len(summary.Diagnostics))
	return summary, nil
}
