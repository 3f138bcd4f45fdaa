// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lkeegan/flake8-nb/internal/noqa"
	"github.com/lkeegan/flake8-nb/internal/rules"
)

// Grammar describes the accepted tag forms; it is part of every
// InvalidTagWarning.
const Grammar = "flake8-noqa-line/cell-tags should be of form " +
	"'flake8-noqa-cell-<rule1>-<rule2>'|'flake8-noqa-cell'/" +
	"'flake8-noqa-line-<line_nr>-<rule1>-<rule2>'|'flake8-noqa-line-<rule1>'"

// InvalidTagWarning reports a tag that looks like an annotation tag but
// does not follow the grammar. It is never fatal: the tag is ignored.
type InvalidTagWarning struct {
	// Tag is the offending tag text.
	Tag string `json:"tag" yaml:"tag"`

	// Expected is the grammar description.
	Expected string `json:"expected" yaml:"expected"`
}

func newInvalidTagWarning(tag string) *InvalidTagWarning {
	return &InvalidTagWarning{Tag: tag, Expected: Grammar}
}

func (w InvalidTagWarning) Error() string {
	return fmt.Sprintf("%s, you used: '%s'", w.Expected, w.Tag)
}

// Translate converts a tag into its rule fragment. A malformed tag yields
// an empty fragment and a warning.
func Translate(tag string) (rules.Fragment, *InvalidTagWarning) {
	switch {
	case tag == cellPrefix:
		return rules.Fragment{rules.CellScope: {rules.Blanket}}, nil

	case strings.HasPrefix(tag, cellPrefix+"-"):
		codes, ok := splitCodes(strings.TrimPrefix(tag, cellPrefix+"-"))
		if !ok {
			return rules.Fragment{}, newInvalidTagWarning(tag)
		}
		return rules.Fragment{rules.CellScope: codes}, nil

	case strings.HasPrefix(tag, linePrefix+"-"):
		lineNr, rest, itemized := strings.Cut(strings.TrimPrefix(tag, linePrefix+"-"), "-")
		n, ok := parseLineNr(lineNr)
		if !ok {
			return rules.Fragment{}, newInvalidTagWarning(tag)
		}
		scope := rules.LineScope(n)
		if !itemized {
			return rules.Fragment{scope: {rules.Blanket}}, nil
		}
		codes, ok := splitCodes(rest)
		if !ok {
			return rules.Fragment{}, newInvalidTagWarning(tag)
		}
		return rules.Fragment{scope: codes}, nil
	}
	return rules.Fragment{}, newInvalidTagWarning(tag)
}

// parseLineNr accepts a non-empty run of decimal digits.
func parseLineNr(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// splitCodes splits a hyphen-joined code list; every code must be
// letters followed by digits.
func splitCodes(s string) ([]string, bool) {
	codes := strings.Split(s, "-")
	for _, c := range codes {
		if !noqa.IsCode(c) {
			return nil, false
		}
	}
	return codes, true
}

// Collect translates tags in order. Malformed tags contribute an empty
// fragment and a warning, in the order they were seen.
func Collect(tags []string) ([]rules.Fragment, []InvalidTagWarning) {
	fragments := make([]rules.Fragment, 0, len(tags))
	var warnings []InvalidTagWarning
	for _, tag := range tags {
		f, w := Translate(tag)
		if w != nil {
			warnings = append(warnings, *w)
		}
		fragments = append(fragments, f)
	}
	return fragments, warnings
}
