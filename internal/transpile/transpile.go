// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transpile turns notebook cells into annotated flat text that the
// native checker can lint unchanged.
//
// Each processed cell becomes a block: a header line "#In[<n>]" followed by
// the cell source, every line carrying its merged suppression comment.
// Block line 1 is the header; block line k (k >= 2) is cell line k-1.
package transpile

import (
	"fmt"
	"strings"

	"github.com/lkeegan/flake8-nb/internal/noqa"
	"github.com/lkeegan/flake8-nb/internal/rules"
	"github.com/lkeegan/flake8-nb/internal/tags"
	"github.com/lkeegan/flake8-nb/pkg/types"
)

// headerLines is the number of synthetic lines in front of every block.
const headerLines = 1

// Result is the transpiled form of one cell.
type Result struct {
	// Text is the header followed by the rewritten source lines. It always
	// ends with a newline.
	Text string

	// Rules is the reconciled rule mapping the lines were annotated with.
	Rules rules.Mapping

	// Warnings lists malformed tags, metadata tags first.
	Warnings []tags.InvalidTagWarning

	// Lines is the number of source lines in the cell.
	Lines int
}

// IsSkippable reports whether a cell contributes nothing to the checker
// input: non-code cells and code cells without source.
func IsSkippable(cell types.Cell) bool {
	return cell.Type != types.CellCode || len(cell.Source) == 0
}

// Header returns the marker line identifying a cell by its input number.
func Header(inputNr int) string {
	return fmt.Sprintf("#In[%d]", inputNr)
}

// InputName returns the display name of a cell, e.g. "nb.ipynb#In[3]".
func InputName(filename string, inputNr int) string {
	return filename + Header(inputNr)
}

// RuleMapping reconciles the metadata tags and then the inline tags of the
// cell, in source order, into one rule mapping.
func RuleMapping(cell types.Cell) (rules.Mapping, []tags.InvalidTagWarning) {
	all := append(tags.MetadataTags(cell), tags.CellInlineTags(cell)...)
	fragments, warnings := tags.Collect(all)
	return rules.Fold(fragments...), warnings
}

// Cell transpiles a non-skippable cell into its annotated block. Callers
// filter with IsSkippable first.
func Cell(cell types.Cell, inputNr int) Result {
	mapping, warnings := RuleMapping(cell)

	var b strings.Builder
	b.WriteString(Header(inputNr))
	b.WriteString("\n")
	for i, line := range cell.Source {
		line = noqa.Rewrite(line, mapping.LineRules(i))
		b.WriteString(line)
		// one block line per source line, whatever the loader handed us
		if !strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}

	return Result{
		Text:     b.String(),
		Rules:    mapping,
		Warnings: warnings,
		Lines:    len(cell.Source),
	}
}
