// Package prompt asks for draw input on a line-oriented terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/han-tyumi/secret-santa/internal/config"
)

var ErrNotInteractive = errors.New("stdin is not a terminal")

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Names asks for a comma-separated list until at least two distinct names
// are given.
func (p *Prompter) Names() ([]string, error) {
	for {
		line, err := p.readLine("Enter names separated by commas: ")
		if err != nil {
			return nil, err
		}

		r := &config.Roster{}
		for _, name := range config.SplitNames(line) {
			_ = r.AddMember(name)
		}
		if len(r.Members) >= 2 {
			return r.Members, nil
		}
		fmt.Fprintln(p.out, "at least two names are required")
	}
}

// Exclusions walks through every member and asks who they must not draw.
//
// Choices start from the members who already excluded this one, mirroring
// the usual expectation that exclusions between couples go both ways. An
// empty answer keeps the pre-selected choices, "-" clears them, and a list
// of numbers replaces them.
func (p *Prompter) Exclusions(names []string) (map[string][]string, error) {
	exclusions := make(map[string][]string, len(names))
	preselected := make(map[string]map[string]bool, len(names))

	for _, name := range names {
		var items []string
		for _, other := range names {
			if other != name {
				items = append(items, other)
			}
		}

		fmt.Fprintf(p.out, "\nExclusions for %s\n", name)
		for i, item := range items {
			mark := " "
			if preselected[name][item] {
				mark = "x"
			}
			fmt.Fprintf(p.out, "  [%s] %d) %s\n", mark, i+1, item)
		}

		selected, err := p.choose(items, preselected[name])
		if err != nil {
			return nil, err
		}

		for _, s := range selected {
			if preselected[s] == nil {
				preselected[s] = make(map[string]bool)
			}
			preselected[s][name] = true
		}
		if len(selected) > 0 {
			exclusions[name] = selected
		}
	}
	return exclusions, nil
}

func (p *Prompter) choose(items []string, preselected map[string]bool) ([]string, error) {
	for {
		line, err := p.readLine("Numbers separated by commas (enter keeps [x], - for none): ")
		if err != nil {
			return nil, err
		}

		switch line {
		case "":
			var selected []string
			for _, item := range items {
				if preselected[item] {
					selected = append(selected, item)
				}
			}
			return selected, nil
		case "-":
			return nil, nil
		}

		selected, err := parseChoices(line, items)
		if err == nil {
			return selected, nil
		}
		fmt.Fprintln(p.out, err)
	}
}

func parseChoices(line string, items []string) ([]string, error) {
	seen := make(map[int]bool)
	var selected []string
	for _, field := range config.SplitNames(line) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(items) {
			return nil, fmt.Errorf("invalid choice %q: pick numbers between 1 and %d", field, len(items))
		}
		if !seen[n] {
			seen[n] = true
			selected = append(selected, items[n-1])
		}
	}
	return selected, nil
}

// Confirm asks a yes/no question. Anything but "y" or "yes" means no.
func (p *Prompter) Confirm(question string) (bool, error) {
	line, err := p.readLine(question + " [y/N] ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
