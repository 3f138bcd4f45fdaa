// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tags recognizes flake8-noqa annotation tags in cell metadata and
// inline comments and translates them into rule fragments.
//
// The tag grammar is hyphen delimited and case sensitive:
//
//	flake8-noqa-cell                       all codes, whole cell
//	flake8-noqa-cell-<code>[-<code>...]    listed codes, whole cell
//	flake8-noqa-line-<n>                   all codes, line n (1-indexed)
//	flake8-noqa-line-<n>-<code>[-<code>...] listed codes, line n
package tags

import (
	"regexp"
	"strings"

	"github.com/lkeegan/flake8-nb/internal/noqa"
	"github.com/lkeegan/flake8-nb/pkg/types"
)

const (
	cellPrefix = "flake8-noqa-cell"
	linePrefix = "flake8-noqa-line"
)

// tokenPattern limits inline tags to the grammar's character class, so
// quotes or brackets of a surrounding string literal never end up in a tag.
var tokenPattern = regexp.MustCompile(`^flake8-noqa-(?:cell|line)[A-Za-z0-9-]*$`)

// IsTag reports whether s starts like an annotation tag. It does not
// validate the rest of the grammar; Translate does.
func IsTag(s string) bool {
	return strings.HasPrefix(s, cellPrefix) || strings.HasPrefix(s, linePrefix)
}

// MetadataTags returns the annotation tags of the cell metadata in their
// original order.
func MetadataTags(cell types.Cell) []string {
	var out []string
	for _, tag := range cell.Tags {
		if IsTag(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// InlineTags returns the annotation tags written in the trailing comment
// of line, left to right. The comment body must consist of tags only, each
// made of letters, digits and hyphens, and a line wrapped entirely in
// quotes yields nothing.
func InlineTags(line string) []string {
	if noqa.QuoteWrapped(line) {
		return nil
	}
	idx := strings.LastIndexByte(line, '#')
	if idx < 0 {
		return nil
	}
	fields := strings.Fields(line[idx+1:])
	if len(fields) == 0 {
		return nil
	}
	for _, f := range fields {
		if !tokenPattern.MatchString(f) {
			return nil
		}
	}
	return fields
}

// CellInlineTags collects InlineTags over the cell source in line order.
func CellInlineTags(cell types.Cell) []string {
	var out []string
	for _, line := range cell.Source {
		out = append(out, InlineTags(line)...)
	}
	return out
}
