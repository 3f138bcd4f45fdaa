// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package noqa parses and rewrites the checker's native end-of-line
// suppression comment ("# noqa" / "# noqa: E402, F401").
//
// A line carries a suppression comment only when the comment is anchored at
// the end of the line and the line is not wrapped entirely in quotes. The
// quote check is a whole-line heuristic, not a string literal scanner.
package noqa

import (
	"regexp"
	"strings"

	"github.com/lkeegan/flake8-nb/internal/rules"
)

// Keyword is the native suppression keyword.
const Keyword = "noqa"

// codeExpr is the shape of a single rule code: letters followed by digits.
const codeExpr = `[A-Za-z]+[0-9]+`

var codePattern = regexp.MustCompile(`^` + codeExpr + `$`)

// commentPattern matches a line ending in a suppression comment.
//
//	source: everything before the comment, minus the separating whitespace
//	codes:  the optional list of codes (letters followed by digits)
var commentPattern = regexp.MustCompile(
	`^(?P<source>.*?)\s*#\s*` + Keyword + `\s*:?\s*(?P<codes>` + codeExpr + `(?:[,\s]+` + codeExpr + `)*)?\s*$`,
)

var (
	sourceGroup = commentPattern.SubexpIndex("source")
	codesGroup  = commentPattern.SubexpIndex("codes")
)

// IsCode reports whether s is a well-formed rule code such as "E402".
func IsCode(s string) bool {
	return codePattern.MatchString(s)
}

// QuoteWrapped reports whether the trimmed line starts and ends with the
// same quote character, i.e. looks like text inside a string literal.
func QuoteWrapped(line string) bool {
	s := strings.TrimSpace(line)
	if len(s) < 2 {
		return false
	}
	q := s[0]
	return (q == '"' || q == '\'') && s[len(s)-1] == q
}

// match returns the submatches of a recognized suppression comment, or nil.
func match(line string) []string {
	if QuoteWrapped(line) {
		return nil
	}
	return commentPattern.FindStringSubmatch(strings.TrimRight(line, " \t\r\n"))
}

// Parse returns the codes of the suppression comment on line in their
// original order, []string{rules.Blanket} for a comment without codes, or
// nil when the line has no recognizable suppression comment.
func Parse(line string) []string {
	m := match(line)
	if m == nil {
		return nil
	}
	if m[codesGroup] == "" {
		return []string{rules.Blanket}
	}
	return strings.FieldsFunc(m[codesGroup], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// Comment renders the canonical suppression comment for codes. A blanket
// set renders as "# noqa: " with no codes.
func Comment(codes rules.Set) string {
	if codes.IsBlanket() {
		return "# " + Keyword + ": "
	}
	return "# " + Keyword + ": " + strings.Join(codes.Sorted(), ", ")
}

// Rewrite returns line with its suppression comment merged with required.
// The existing comment is replaced in place; when there is none a new
// comment is appended after two spaces, blank lines included. Rewritten
// lines end with exactly one terminator, "\r\n" when the line had one and
// "\n" otherwise. A line with nothing to suppress is returned verbatim.
func Rewrite(line string, required rules.Set) string {
	m := match(line)
	if len(required) == 0 && m == nil {
		return line
	}

	eol := "\n"
	if strings.HasSuffix(line, "\r\n") {
		eol = "\r\n"
	}

	if m == nil {
		return strings.TrimRight(line, " \t\r\n") + "  " + Comment(required) + eol
	}

	merged := required.Union(rules.NewSet(Parse(line)...))
	source := m[sourceGroup]
	if strings.TrimSpace(source) == "" {
		// comment-only line: keep the indentation, no separator
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		return indent + Comment(merged) + eol
	}
	return source + "  " + Comment(merged) + eol
}
