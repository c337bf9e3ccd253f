package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(lines []Line) []string {
	ss := make([]string, len(lines))
	for i, line := range lines {
		ss[i] = line.Text
	}
	return ss
}

func TestLines(t *testing.T) {
	in := FromString("sample", "\n  abc\n\n  de \n\n")
	lines := in.Lines()
	assert.Equal(t, []string{"abc", "", "de"}, texts(lines))
	assert.Equal(t, "sample:2", lines[0].Location.String())
	assert.Equal(t, "sample:4", lines[2].Location.String())
}

func TestRawLines(t *testing.T) {
	in := FromString("raw", "    [D]    \r\n[N] [C]\n")
	assert.Equal(t, []string{"    [D]    ", "[N] [C]"}, texts(in.RawLines()))
	assert.Nil(t, FromString("empty", "").RawLines())
}

func TestParagraphs(t *testing.T) {
	in := FromString("groups", "abc\n\na\nb\nc\n\n\n\nab\nac\n")
	var got [][]string
	for _, group := range in.Paragraphs() {
		got = append(got, texts(group))
	}
	assert.Equal(t, [][]string{
		{"abc"},
		{"a", "b", "c"},
		{"ab", "ac"},
	}, got)
}

func TestInts(t *testing.T) {
	ns, err := Ints(FromString("ints", "1\n 22\n-3\n").Lines())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 22, -3}, ns)

	_, err = Ints(FromString("bad", "1\nx2\n").Lines())
	assert.EqualError(t, err, `bad:2: invalid number "x2"`)
	var ierr *Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, 2, ierr.Line)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("42\n"), 0644))

	in, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, in.Name)
	assert.Equal(t, "42", in.Text())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
