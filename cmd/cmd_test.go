package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/han-tyumi/secret-santa/internal/generator"
	"github.com/han-tyumi/secret-santa/internal/roster"
)

// run executes the root command with fresh flag values and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	drawFlags, checkFlags = rosterFlags{}, rosterFlags{}
	outputDir, seed, attempts = "", 0, generator.DefaultMaxAttempts
	timeout, workers, interactive, verbose = 10*time.Second, 1, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDraw_TwoMembers(t *testing.T) {
	out, err := run(t, "", "draw", "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice -> bob\nbob   -> alice\n", out)
}

func TestDraw_SeededIsReproducible(t *testing.T) {
	args := []string{"draw", "a=b", "b", "c", "d=a,c", "e", "--seed", "7"}

	first, err := run(t, "", args...)
	require.NoError(t, err)
	second, err := run(t, "", args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 5)
	assert.NotContains(t, first, "a -> b")
}

func TestDraw_ConfigFileAndOutputDir(t *testing.T) {
	dir := t.TempDir()
	rosterFile := filepath.Join(dir, "family.yaml")
	require.NoError(t, os.WriteFile(rosterFile, []byte(`
members: [ann, ben, cal]
exclusions:
  ann: [ben]
`), 0o600))
	envelopes := filepath.Join(dir, "envelopes")

	out, err := run(t, "", "draw", "-f", rosterFile, "-o", envelopes, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 3 assignment(s)")

	data, err := os.ReadFile(filepath.Join(envelopes, "ann"))
	require.NoError(t, err)
	assert.Equal(t, "cal\n", string(data))
}

func TestDraw_EmptyCandidatePool(t *testing.T) {
	_, err := run(t, "", "draw", "A=B,C", "B", "C")
	require.ErrorIs(t, err, roster.ErrEmptyCandidatePool)
}

func TestDraw_Exhausted(t *testing.T) {
	_, err := run(t, "", "draw", "A=B", "B=A", "C", "--attempts", "5")
	require.ErrorIs(t, err, generator.ErrAttemptsExhausted)
}

func TestDraw_NoMembers(t *testing.T) {
	_, err := run(t, "", "draw")
	require.ErrorIs(t, err, errNoMembers)
}

func TestDraw_Interactive(t *testing.T) {
	// names, three exclusion checklists, then decline a redraw. ann excludes
	// ben, ben clears the pre-selected reciprocal, so ann must draw cal.
	stdin := strings.Join([]string{"ann, ben, cal", "1", "-", "", "n"}, "\n") + "\n"

	out, err := run(t, stdin, "draw", "-i")
	require.NoError(t, err)
	assert.Contains(t, out, "ann -> cal")
}

func TestDraw_InteractiveRegenerate(t *testing.T) {
	stdin := strings.Join([]string{"", "", "y", "n"}, "\n") + "\n"

	out, err := run(t, stdin, "draw", "-i", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "a -> b"))
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check", "A=B", "B", "C", "--symmetric")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"A", "B", "C", "*"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"B", "A", "C", "*"}, strings.Fields(lines[2]))
}

func TestCheck_Strict(t *testing.T) {
	_, err := run(t, "", "check", "A=Z", "B", "--strict")
	require.ErrorIs(t, err, roster.ErrUnknownMember)

	_, err = run(t, "", "check", "A=Z", "B")
	require.NoError(t, err)
}

func TestWantsPrompt(t *testing.T) {
	interactive = false
	t.Cleanup(func() { interactive = false })

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, wantsPrompt(strings.NewReader(""), 0))
	assert.False(t, wantsPrompt(f, 0), "a regular file is not a terminal")
	assert.False(t, wantsPrompt(f, 2))
	assert.False(t, interactive, "detection must not change the flag")

	interactive = true
	assert.True(t, wantsPrompt(strings.NewReader(""), 2))
}
