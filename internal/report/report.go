// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes diagnostics and rule mappings in text, JSON or
// YAML form.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/lkeegan/flake8-nb/internal/transpile"
	"github.com/lkeegan/flake8-nb/pkg/types"
)

// Diagnostics writes diags to w in the requested format. The text format
// mirrors the checker's own: "<input name>:<line>:<col>: <code> <message>".
func Diagnostics(w io.Writer, format types.OutputFormat, diags []types.NotebookDiagnostic) error {
	switch format {
	case types.OutputText, "":
		for _, d := range diags {
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s\n", d.InputName, d.Line, d.Column, d.Code, d.Message); err != nil {
				return err
			}
		}
		return nil
	case types.OutputJSON:
		if diags == nil {
			diags = []types.NotebookDiagnostic{}
		}
		return writeJSON(w, diags)
	case types.OutputYAML:
		return writeYAML(w, diags)
	}
	return fmt.Errorf("unsupported format %q: use text, json or yaml", format)
}

// CellRules is the reconciled rule mapping of one transpiled cell.
type CellRules struct {
	InputName string              `json:"input_name" yaml:"input_name"`
	Cell      int                 `json:"cell" yaml:"cell"`
	Rules     map[string][]string `json:"rules" yaml:"rules"`
	Warnings  []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewCellRules collects the rule mappings of every block in doc.
func NewCellRules(doc transpile.Document) []CellRules {
	out := make([]CellRules, 0, len(doc.Blocks))
	for _, blk := range doc.Blocks {
		cr := CellRules{
			InputName: blk.InputName,
			Cell:      blk.CellIndex,
			Rules:     blk.Rules.Codes(),
		}
		for _, w := range blk.Warnings {
			cr.Warnings = append(cr.Warnings, w.Error())
		}
		out = append(out, cr)
	}
	return out
}

// Rules writes the rule mappings of doc to w. Text output lists one scope
// per line, cell scope first.
func Rules(w io.Writer, format types.OutputFormat, doc transpile.Document) error {
	cells := NewCellRules(doc)
	switch format {
	case types.OutputText, "":
		for i, cr := range cells {
			if err := writeCellRules(w, cr, doc.Blocks[i].Rules.Scopes()); err != nil {
				return err
			}
		}
		return nil
	case types.OutputJSON:
		return writeJSON(w, cells)
	case types.OutputYAML:
		return writeYAML(w, cells)
	}
	return fmt.Errorf("unsupported format %q: use text, json or yaml", format)
}

func writeCellRules(w io.Writer, cr CellRules, scopes []string) error {
	if _, err := fmt.Fprintf(w, "%s (cell %d)\n", cr.InputName, cr.Cell); err != nil {
		return err
	}
	for _, scope := range scopes {
		if _, err := fmt.Fprintf(w, "  %-6s %v\n", scope, cr.Rules[scope]); err != nil {
			return err
		}
	}
	for _, warning := range cr.Warnings {
		if _, err := fmt.Fprintf(w, "  warning: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
