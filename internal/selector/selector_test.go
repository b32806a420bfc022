// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(input, cwd string) (*Selector, *bytes.Buffer) {
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out)
	s.getwd = func() (string, error) { return cwd, nil }
	return s, &out
}

func TestSelect(t *testing.T) {
	cwd := filepath.Join(t.TempDir(), "work")
	require.NoError(t, os.MkdirAll(cwd, 0o755))
	existing := t.TempDir()

	tests := []struct {
		name      string
		input     string
		want      string
		wantOut   []string
		createdAt string
	}{
		{
			name:  "current directory",
			input: "1\n",
			want:  cwd,
		},
		{
			name:  "parent directory",
			input: "2\n",
			want:  filepath.Dir(cwd),
		},
		{
			name:      "child directory is created",
			input:     "3\nsorted\n",
			want:      filepath.Join(cwd, "sorted"),
			createdAt: filepath.Join(cwd, "sorted"),
		},
		{
			name:  "explicit existing path",
			input: "4\n" + existing + "\n",
			want:  existing,
		},
		{
			name:    "invalid option re-prompts",
			input:   "9\nabc\n1\n",
			want:    cwd,
			wantOut: []string{"Invalid option. Please select between 1 and 4."},
		},
		{
			name:    "missing path re-prompts",
			input:   "4\n" + filepath.Join(existing, "nope") + "\n4\n" + existing + "\n",
			want:    existing,
			wantOut: []string{"The directory does not exist. Please try again."},
		},
		{
			name:    "empty child name re-prompts",
			input:   "3\n\n1\n",
			want:    cwd,
			wantOut: []string{"The directory name cannot be empty."},
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  1 \r\n",
			want:  cwd,
		},
		{
			name:  "final line without newline",
			input: "2",
			want:  filepath.Dir(cwd),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSelector(tt.input, cwd)
			got, err := s.Select()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Which directory do you want to organize?")
			assert.Contains(t, out.String(), "Select an option (1-4): ")
			for _, w := range tt.wantOut {
				assert.Contains(t, out.String(), w)
			}
			if tt.createdAt != "" {
				assert.DirExists(t, tt.createdAt)
			}
		})
	}
}

func TestSelectShowsMenuAgainAfterInvalidOption(t *testing.T) {
	s, out := newTestSelector("5\n1\n", t.TempDir())
	_, err := s.Select()
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "Which directory do you want to organize?"))
}

func TestSelectChildDirectoryAlreadyExists(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(cwd, "inbox"), 0o755))

	s, _ := newTestSelector("3\ninbox\n", cwd)
	got, err := s.Select()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "inbox"), got)
}

func TestSelectRejectsFileAsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	s, out := newTestSelector("4\n"+file+"\n", dir)
	_, err := s.Select()
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Contains(t, out.String(), "The directory does not exist.")
}

func TestSelectEndOfInput(t *testing.T) {
	for _, input := range []string{"", "7\n", "3\n", "4\n"} {
		s, _ := newTestSelector(input, t.TempDir())
		_, err := s.Select()
		assert.ErrorIs(t, err, ErrNoInput, "input %q", input)
	}
}

func TestSelectGetwdFailure(t *testing.T) {
	s, _ := newTestSelector("1\n", "")
	s.getwd = func() (string, error) { return "", errors.New("cwd removed") }
	_, err := s.Select()
	assert.EqualError(t, err, "cwd removed")
}
