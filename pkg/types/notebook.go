// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CellType identifies the kind of a notebook cell.
type CellType string

const (
	CellCode     CellType = "code"
	CellMarkdown CellType = "markdown"
	CellRaw      CellType = "raw"
)

// Cell is a single notebook cell as handed over by the notebook loader.
// Source lines keep their line terminators; only the last line may lack one.
type Cell struct {
	// Type is the cell_type field of the notebook cell.
	Type CellType `json:"cell_type" yaml:"cell_type"`

	// ExecutionCount is nil for cells that were never executed.
	ExecutionCount *int `json:"execution_count" yaml:"execution_count"`

	// Tags holds metadata.tags in notebook order.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Source holds the cell source split into lines.
	Source []string `json:"source" yaml:"source"`
}

// Notebook is a loaded notebook document.
type Notebook struct {
	// Path is the file the notebook was read from (empty for in-memory notebooks).
	Path string `json:"path" yaml:"path"`

	// Cells lists the notebook cells in document order.
	Cells []Cell `json:"cells" yaml:"cells"`
}

// IntPtr returns a pointer to n. It is a convenience for building cells
// with an execution count.
func IntPtr(n int) *int {
	return &n
}
