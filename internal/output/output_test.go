package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/han-tyumi/secret-santa/internal/matcher"
	"github.com/han-tyumi/secret-santa/internal/roster"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, matcher.Assignment{"bob": "alice", "alice": "bob"}))

	assert.Equal(t, "alice -> bob\nbob   -> alice\n", buf.String())
}

func TestPrintRoster(t *testing.T) {
	r, err := roster.New([]string{"A", "B", "C"}, map[string][]string{"A": {"B"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrintRoster(&buf, r))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"MEMBER", "EXCLUDES", "CANDIDATES", "FIRST"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"A", "B", "C", "*"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"B", "-", "A,", "C"}, strings.Fields(lines[2]))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintRoster_WriteError(t *testing.T) {
	r, err := roster.New([]string{"A", "B"}, nil)
	require.NoError(t, err)

	err = PrintRoster(failingWriter{}, r)
	require.EqualError(t, err, "disk full")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	a := matcher.Assignment{"alice": "bob", "bob": "alice"}

	require.NoError(t, WriteFiles(dir, a))

	data, err := os.ReadFile(filepath.Join(dir, "alice"))
	require.NoError(t, err)
	assert.Equal(t, "bob\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "bob"))
	require.NoError(t, err)
	assert.Equal(t, "alice\n", string(data))
}

func TestWriteFiles_UnsafeName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"..", "a/b", `a\b`} {
		err := WriteFiles(dir, matcher.Assignment{name: "x", "x": name})
		require.ErrorIs(t, err, ErrUnsafeName, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written when any name is unsafe")
}
