// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook reads nbformat 4 notebook files into types.Notebook.
// All shape validation of notebook JSON happens here; the rest of the
// module only sees typed cells.
package notebook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lkeegan/flake8-nb/pkg/types"
)

const minFormat = 4

type rawNotebook struct {
	Format *int      `json:"nbformat"`
	Cells  []rawCell `json:"cells"`
}

type rawCell struct {
	Type           string          `json:"cell_type"`
	ExecutionCount *int            `json:"execution_count"`
	Metadata       rawMetadata     `json:"metadata"`
	Source         json.RawMessage `json:"source"`
}

type rawMetadata struct {
	Tags []string `json:"tags"`
}

// Load reads the notebook at path.
func Load(path string) (types.Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Notebook{}, fmt.Errorf("opening notebook %s: %w", path, err)
	}
	defer f.Close()

	nb, err := Parse(f)
	if err != nil {
		return types.Notebook{}, fmt.Errorf("reading notebook %s: %w", path, err)
	}
	nb.Path = path
	return nb, nil
}

// Parse decodes notebook JSON from r.
func Parse(r io.Reader) (types.Notebook, error) {
	var raw rawNotebook
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return types.Notebook{}, fmt.Errorf("decoding notebook JSON: %w", err)
	}
	if raw.Format == nil {
		return types.Notebook{}, fmt.Errorf("missing nbformat field")
	}
	if *raw.Format < minFormat {
		return types.Notebook{}, fmt.Errorf("unsupported nbformat %d (need %d or later)", *raw.Format, minFormat)
	}

	nb := types.Notebook{Cells: make([]types.Cell, 0, len(raw.Cells))}
	for i, rc := range raw.Cells {
		if rc.Type == "" {
			return types.Notebook{}, fmt.Errorf("cell %d: missing cell_type", i)
		}
		source, err := decodeSource(rc.Source)
		if err != nil {
			return types.Notebook{}, fmt.Errorf("cell %d: %w", i, err)
		}
		nb.Cells = append(nb.Cells, types.Cell{
			Type:           types.CellType(rc.Type),
			ExecutionCount: rc.ExecutionCount,
			Tags:           rc.Metadata.Tags,
			Source:         source,
		})
	}
	return nb, nil
}

// decodeSource accepts both nbformat spellings of a cell source: a list of
// strings or a single multi-line string. Either way the result holds one
// physical line per element, since list elements may carry several lines.
func decodeSource(data json.RawMessage) ([]string, error) {
	if len(data) == 0 || string(data) == "null" {
		return []string{}, nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err == nil {
		return SplitLines(strings.Join(parts, "")), nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil, fmt.Errorf("source must be a string or a list of strings")
	}
	return SplitLines(text), nil
}

// SplitLines splits text into lines, keeping the line terminators.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
