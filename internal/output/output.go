// Package output renders draw results to the console and to per-member files.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/han-tyumi/secret-santa/internal/matcher"
	"github.com/han-tyumi/secret-santa/internal/roster"
)

var ErrUnsafeName = errors.New("member name cannot be used as a file name")

// Print writes one "assigner -> recipient" line per member.
func Print(w io.Writer, a matcher.Assignment) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, p := range a.Sorted() {
		if _, err := fmt.Fprintf(tw, "%s\t-> %s\n", p.From, p.To); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// PrintRoster writes each member's candidate pool, marking the members that
// every draw resolves first.
func PrintRoster(w io.Writer, r *roster.Roster) error {
	first := make(map[string]bool)
	for _, m := range r.PriorityGroup() {
		first[m] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "MEMBER\tEXCLUDES\tCANDIDATES\tFIRST"); err != nil {
		return err
	}
	for _, m := range r.Members() {
		mark := ""
		if first[m] {
			mark = "*"
		}
		_, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m,
			orDash(strings.Join(r.Exclusions(m), ", ")),
			strings.Join(r.Pool(m).Members(), ", "),
			mark,
		)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteFiles writes each recipient's name to a file named after the member
// who drew them, inside dir. The directory is created if needed.
func WriteFiles(dir string, a matcher.Assignment) error {
	pairs := a.Sorted()
	for _, p := range pairs {
		if err := checkFileName(p.From); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, p := range pairs {
		path := filepath.Join(dir, p.From)
		if err := os.WriteFile(path, []byte(p.To+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

func checkFileName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
