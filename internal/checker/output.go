// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checker

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/lkeegan/flake8-nb/pkg/types"
)

// linePattern matches the default flake8 format "path:row:col: CODE text".
var linePattern = regexp.MustCompile(`^(?P<path>.+):(?P<row>\d+):(?P<col>\d+): (?P<code>\S+) ?(?P<text>.*)$`)

// ParseOutput reads checker output, one finding per line. Blank lines are
// skipped; any other line that does not match the format is an error.
func ParseOutput(r io.Reader) ([]types.Diagnostic, error) {
	var diags []types.Diagnostic
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("unexpected checker output: %q", line)
		}
		row, _ := strconv.Atoi(m[linePattern.SubexpIndex("row")])
		col, _ := strconv.Atoi(m[linePattern.SubexpIndex("col")])
		diags = append(diags, types.Diagnostic{
			Filename: m[linePattern.SubexpIndex("path")],
			Line:     row,
			Column:   col,
			Code:     m[linePattern.SubexpIndex("code")],
			Message:  m[linePattern.SubexpIndex("text")],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading checker output: %w", err)
	}
	return diags, nil
}
