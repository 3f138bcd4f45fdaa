// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Diagnostic is a single finding reported by the native checker against
// the intermediate text of a notebook.
type Diagnostic struct {
	// Filename is the display name the checker reported.
	Filename string `json:"filename" yaml:"filename"`

	// Line is the 1-based line within the intermediate text.
	Line int `json:"line" yaml:"line"`

	// Column is the 1-based column reported by the checker.
	Column int `json:"column" yaml:"column"`

	// Code is the checker rule code (e.g. "E402").
	Code string `json:"code" yaml:"code"`

	// Message is the human readable description.
	Message string `json:"message" yaml:"message"`
}

// NotebookDiagnostic is a Diagnostic mapped back onto notebook coordinates.
type NotebookDiagnostic struct {
	// InputName identifies the cell, e.g. "analysis.ipynb#In[3]".
	InputName string `json:"input_name" yaml:"input_name"`

	// Cell is the 0-based index of the cell in the notebook.
	Cell int `json:"cell" yaml:"cell"`

	// Line is the 1-based line within the cell source.
	Line int `json:"line" yaml:"line"`

	Column  int    `json:"column" yaml:"column"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}
