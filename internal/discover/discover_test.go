// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range []string{
		"a.ipynb",
		"notes.md",
		"sub/b.ipynb",
		"sub/deeper/c.ipynb",
		"sub/.ipynb_checkpoints/b-checkpoint.ipynb",
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}
	return root
}

func TestNotebooks(t *testing.T) {
	root := setupTree(t)
	exclude := []string{"**/.ipynb_checkpoints/**"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "directory is searched recursively",
			args: []string{root},
			want: []string{"a.ipynb", "sub/b.ipynb", "sub/deeper/c.ipynb"},
		},
		{
			name: "file is used as given",
			args: []string{filepath.Join(root, "sub", "b.ipynb")},
			want: []string{"sub/b.ipynb"},
		},
		{
			name: "glob expands",
			args: []string{filepath.Join(root, "**", "*.ipynb")},
			want: []string{"a.ipynb", "sub/b.ipynb", "sub/deeper/c.ipynb"},
		},
		{
			name: "duplicates collapse",
			args: []string{root, filepath.Join(root, "a.ipynb")},
			want: []string{"a.ipynb", "sub/b.ipynb", "sub/deeper/c.ipynb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Notebooks(tt.args, exclude)
			require.NoError(t, err)
			want := make([]string, len(tt.want))
			for i, rel := range tt.want {
				want[i] = filepath.Join(root, filepath.FromSlash(rel))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestNotebooksWithoutExclude(t *testing.T) {
	root := setupTree(t)
	got, err := Notebooks([]string{filepath.Join(root, "sub")}, nil)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestNotebooksErrors(t *testing.T) {
	root := setupTree(t)

	_, err := Notebooks([]string{filepath.Join(root, "missing", "*.ipynb")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no notebooks match")

	_, err = Notebooks([]string{root}, []string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestExcluded(t *testing.T) {
	assert.True(t, Excluded("nb/.ipynb_checkpoints/x.ipynb", []string{"**/.ipynb_checkpoints/**"}))
	assert.False(t, Excluded("nb/x.ipynb", []string{"**/.ipynb_checkpoints/**"}))
	assert.True(t, Excluded("scratch/x.ipynb", []string{"scratch/*"}))
}
