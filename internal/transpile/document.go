// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transpile

import (
	"strings"

	"github.com/lkeegan/flake8-nb/internal/tags"
	"github.com/lkeegan/flake8-nb/pkg/types"
)

// Block is one transpiled cell placed inside a Document.
type Block struct {
	Result

	// InputName identifies the cell, e.g. "nb.ipynb#In[3]".
	InputName string

	// InputNr is the number used in the header.
	InputNr int

	// CellIndex is the 0-based index of the cell in the notebook.
	CellIndex int

	// StartLine is the 1-based document line holding the block header.
	StartLine int
}

// Document is the intermediate text of a whole notebook.
type Document struct {
	// Filename is the display name used for input names.
	Filename string

	// Text is the concatenation of all block texts.
	Text string

	Blocks []Block
}

// Location is a document line mapped back onto the notebook.
type Location struct {
	InputName string
	CellIndex int
	// Line is the 1-based line within the cell source.
	Line int
}

// Notebook transpiles every non-skippable cell of nb; filename is used to
// build input names. See inputNumbers for how cells are numbered.
func Notebook(nb types.Notebook, filename string) Document {
	doc := Document{Filename: filename}
	numbers := inputNumbers(nb.Cells)

	var b strings.Builder
	line := 1
	for i, cell := range nb.Cells {
		if IsSkippable(cell) {
			continue
		}
		inputNr := numbers[i]

		res := Cell(cell, inputNr)
		doc.Blocks = append(doc.Blocks, Block{
			Result:    res,
			InputName: InputName(doc.Filename, inputNr),
			InputNr:   inputNr,
			CellIndex: i,
			StartLine: line,
		})
		b.WriteString(res.Text)
		line += headerLines + res.Lines
	}
	doc.Text = b.String()
	return doc
}

// inputNumbers assigns every non-skippable cell a distinct input number,
// keyed by cell index. A cell keeps its execution count unless an earlier
// cell already claimed it; cells without a usable count are numbered in
// order after the highest execution count.
func inputNumbers(cells []types.Cell) map[int]int {
	highest := 0
	for _, cell := range cells {
		if !IsSkippable(cell) && cell.ExecutionCount != nil && *cell.ExecutionCount > highest {
			highest = *cell.ExecutionCount
		}
	}

	numbers := make(map[int]int, len(cells))
	used := make(map[int]bool, len(cells))
	next := highest + 1
	for i, cell := range cells {
		if IsSkippable(cell) {
			continue
		}
		if cell.ExecutionCount != nil && !used[*cell.ExecutionCount] {
			numbers[i] = *cell.ExecutionCount
		} else {
			numbers[i] = next
			next++
		}
		used[numbers[i]] = true
	}
	return numbers
}

// Warnings returns the malformed-tag warnings of every block in order.
func (d Document) Warnings() []tags.InvalidTagWarning {
	var out []tags.InvalidTagWarning
	for _, blk := range d.Blocks {
		out = append(out, blk.Warnings...)
	}
	return out
}

// Locate maps a 1-based document line back onto its cell. Header lines
// and lines past the end do not map.
func (d Document) Locate(line int) (Location, bool) {
	for _, blk := range d.Blocks {
		first := blk.StartLine + headerLines
		last := blk.StartLine + headerLines + blk.Lines - 1
		if line < blk.StartLine || line > last {
			continue
		}
		if line < first {
			return Location{}, false
		}
		return Location{
			InputName: blk.InputName,
			CellIndex: blk.CellIndex,
			Line:      line - blk.StartLine,
		}, true
	}
	return Location{}, false
}
