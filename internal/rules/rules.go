// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules reconciles suppression rules collected from several sources
// into one rule mapping per notebook cell.
//
// A rule mapping is keyed by scope: CellScope applies to every line of the
// cell, a 1-indexed line number string applies to a single line. For any
// scope the Blanket marker never coexists with itemized codes.
package rules

import (
	"sort"
	"strconv"
)

// Blanket marks suppression of every code for a scope.
const Blanket = "noqa"

// CellScope is the scope key for rules that apply to the whole cell.
const CellScope = "cell"

// LineScope returns the scope key of the 1-indexed line n.
func LineScope(n int) string {
	return strconv.Itoa(n)
}

// Set is an unordered set of rule codes.
type Set map[string]struct{}

// NewSet builds a set from codes; duplicates collapse.
func NewSet(codes ...string) Set {
	s := make(Set, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether code is in the set.
func (s Set) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// IsBlanket reports whether the set suppresses every code.
func (s Set) IsBlanket() bool {
	return s.Has(Blanket)
}

// Union returns a new set holding the codes of s and o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range o {
		out[c] = struct{}{}
	}
	return out
}

// Sorted returns the codes in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Fragment is the rule contribution of a single annotation tag.
type Fragment map[string][]string

// Mapping is the reconciled rule table of one cell.
type Mapping map[string]Set

// Merge folds f into m:
//   - a blanket in f replaces whatever m holds for that scope,
//   - an established blanket in m is never downgraded,
//   - otherwise itemized codes accumulate.
func (m Mapping) Merge(f Fragment) {
	for scope, codes := range f {
		incoming := NewSet(codes...)
		switch {
		case incoming.IsBlanket():
			m[scope] = NewSet(Blanket)
		case m[scope].IsBlanket():
		default:
			m[scope] = m[scope].Union(incoming)
		}
	}
}

// Fold merges fragments in order into a fresh mapping.
func Fold(fragments ...Fragment) Mapping {
	m := make(Mapping)
	for _, f := range fragments {
		m.Merge(f)
	}
	return m
}

// LineRules returns the effective rule set of the source line at the
// 0-based index: the cell-wide rules together with that line's rules.
func (m Mapping) LineRules(index int) Set {
	return m[CellScope].Union(m[LineScope(index+1)])
}

// Scopes returns the scope keys of m, the cell scope first and line scopes
// in ascending numeric order.
func (m Mapping) Scopes() []string {
	scopes := make([]string, 0, len(m))
	for k := range m {
		scopes = append(scopes, k)
	}
	sort.Slice(scopes, func(i, j int) bool {
		a, b := scopes[i], scopes[j]
		if a == CellScope || b == CellScope {
			return a == CellScope && b != CellScope
		}
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)
		if errA != nil || errB != nil {
			return a < b
		}
		return na < nb
	})
	return scopes
}

// Codes returns m as plain sorted code lists, keyed by scope.
func (m Mapping) Codes() map[string][]string {
	out := make(map[string][]string, len(m))
	for scope, set := range m {
		out[scope] = set.Sorted()
	}
	return out
}
