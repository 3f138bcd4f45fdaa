// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lkeegan/flake8-nb/internal/rules"
	"github.com/lkeegan/flake8-nb/pkg/types"
)

func TestMetadataTags(t *testing.T) {
	cell := types.Cell{
		Tags: []string{
			"flake8-noqa-cell-E402-F401",
			"flake8-noqa-cell",
			"flake8-noqa-line-1-E402",
			"flake8-noqa-line-1",
			"random-tag",
		},
	}
	want := []string{
		"flake8-noqa-cell-E402-F401",
		"flake8-noqa-cell",
		"flake8-noqa-line-1-E402",
		"flake8-noqa-line-1",
	}
	assert.Equal(t, want, MetadataTags(cell))
}

func TestInlineTags(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"foo  # flake8-noqa-cell-A402-BC403", []string{"flake8-noqa-cell-A402-BC403"}},
		{"foo  # flake8-noqa-cell     ", []string{"flake8-noqa-cell"}},
		{"foo  # flake8-noqa-line-3-D402         \n", []string{"flake8-noqa-line-3-D402"}},
		{"foo  # flake8-noqa-line-4", []string{"flake8-noqa-line-4"}},
		{"foo  # flake8-noqa-cell-E402 flake8-noqa-cell-F403", []string{"flake8-noqa-cell-E402", "flake8-noqa-cell-F403"}},
		{"foo  # flake8-noqa-line-6-GH402 flake8-noqa-line-6-J403-L43", []string{"flake8-noqa-line-6-GH402", "flake8-noqa-line-6-J403-L43"}},
		{"foo  # flake8-noqa-cell flake8-noqa-cell", []string{"flake8-noqa-cell", "flake8-noqa-cell"}},
		{"foo  # noqa    \n", nil},
		{`"foo  # flake8-noqa-cell"`, nil},
		{"foo  # noqa : flake8-noqa-cell some randome stuff", nil},
		{"foo  # flake8-noqa-cellar", []string{"flake8-noqa-cellar"}},
		{"foo", nil},
		{"foo  #", nil},
		{`print("# flake8-noqa-cell-E402")`, nil},
		{`msg = "# flake8-noqa-cell"`, nil},
		{`x = '# flake8-noqa-line-2-F401'`, nil},
		{`d = {"k": "# flake8-noqa-cell"}`, nil},
		{`print("#")  # flake8-noqa-cell-E402`, []string{"flake8-noqa-cell-E402"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, InlineTags(tt.line))
		})
	}
}

func TestCellInlineTags(t *testing.T) {
	cell := types.Cell{Source: []string{
		"foo  # flake8-noqa-cell-A402-BC403\n",
		"bar\n",
		"foo  # flake8-noqa-line-6-GH402 flake8-noqa-line-6-J403-L43",
	}}
	want := []string{"flake8-noqa-cell-A402-BC403", "flake8-noqa-line-6-GH402", "flake8-noqa-line-6-J403-L43"}
	assert.Equal(t, want, CellInlineTags(cell))
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		tag  string
		want rules.Fragment
	}{
		{"flake8-noqa-cell-E402-F401", rules.Fragment{rules.CellScope: {"E402", "F401"}}},
		{"flake8-noqa-cell", rules.Fragment{rules.CellScope: {rules.Blanket}}},
		{"flake8-noqa-line-1-E402-F401", rules.Fragment{"1": {"E402", "F401"}}},
		{"flake8-noqa-line-1", rules.Fragment{"1": {rules.Blanket}}},
		{"flake8-noqa-line-12-W391", rules.Fragment{"12": {"W391"}}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, warning := Translate(tt.tag)
			assert.Nil(t, warning)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateMalformed(t *testing.T) {
	for _, tag := range []string{
		"flake8-noqa-line-foo-E402-F401",
		"flake8-noqa-line-foo",
		"flake8-noqa-line",
		"flake8-noqa-line-",
		"flake8-noqa-cellar",
		"flake8-noqa-cell-",
		"flake8-noqa-cell-E402--F401",
		"flake8-noqa-line-1-",
		"flake8-noqa-cell-402",
		"flake8-noqa-cell-E402x",
		"flake8-noqa-line-2-F401_",
	} {
		t.Run(tag, func(t *testing.T) {
			got, warning := Translate(tag)
			require.NotNil(t, warning)
			assert.Equal(t, tag, warning.Tag)
			assert.Equal(t, Grammar, warning.Expected)
			assert.Empty(t, got)
		})
	}
}

func TestInvalidTagWarningMessage(t *testing.T) {
	_, warning := Translate("user-pattern")
	require.NotNil(t, warning)
	assert.Equal(t,
		"flake8-noqa-line/cell-tags should be of form "+
			"'flake8-noqa-cell-<rule1>-<rule2>'|'flake8-noqa-cell'/"+
			"'flake8-noqa-line-<line_nr>-<rule1>-<rule2>'|'flake8-noqa-line-<rule1>', "+
			"you used: 'user-pattern'",
		warning.Error(),
	)
}

func TestCollect(t *testing.T) {
	fragments, warnings := Collect([]string{
		"flake8-noqa-line-a",
		"flake8-noqa-cell-E402",
		"flake8-noqa-line-b-E1",
	})
	require.Len(t, fragments, 3)
	assert.Equal(t, rules.Fragment{rules.CellScope: {"E402"}}, fragments[1])
	require.Len(t, warnings, 2)
	assert.Equal(t, "flake8-noqa-line-a", warnings[0].Tag)
	assert.Equal(t, "flake8-noqa-line-b-E1", warnings[1].Tag)
}
