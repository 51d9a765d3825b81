// Package config reads draw rosters from YAML files and command-line
// arguments.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyName    = errors.New("name must not be empty")
	ErrInvalidInput = errors.New("invalid roster")
)

// Roster is the raw member list and exclusions of a draw.
//
// Example file:
//
//	members: [alice, bob, carol]
//	exclusions:
//	  alice: [bob]
//	symmetric: false
type Roster struct {
	Members    []string            `yaml:"members"`
	Exclusions map[string][]string `yaml:"exclusions"`

	// Symmetric makes every exclusion apply in both directions.
	Symmetric bool `yaml:"symmetric"`
}

// Load reads a roster from a YAML file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a YAML roster. Unknown fields are rejected.
func Parse(data []byte) (*Roster, error) {
	r := &Roster{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	normalized := &Roster{Symmetric: r.Symmetric}
	for _, m := range r.Members {
		if err := normalized.AddMember(m); err != nil {
			return nil, err
		}
	}
	for m, excluded := range r.Exclusions {
		if err := normalized.Exclude(m, excluded...); err != nil {
			return nil, err
		}
	}
	return normalized, nil
}

// ParseArgs builds a roster from arguments of the form "name" or
// "name=excluded1,excluded2".
func ParseArgs(args []string) (*Roster, error) {
	r := &Roster{}
	for _, arg := range args {
		name, excluded, _ := strings.Cut(arg, "=")
		if err := r.AddMember(name); err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
		if err := r.Exclude(name, SplitNames(excluded)...); err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
	}
	return r, nil
}

// SplitNames splits a comma-separated list, dropping blank entries.
func SplitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// AddMember adds name to the roster. Adding an existing member is a no-op.
func (r *Roster) AddMember(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	for _, m := range r.Members {
		if m == name {
			return nil
		}
	}
	r.Members = append(r.Members, name)
	return nil
}

// Exclude records that member must not draw any of excluded.
func (r *Roster) Exclude(member string, excluded ...string) error {
	member = strings.TrimSpace(member)
	if member == "" {
		return ErrEmptyName
	}
	if len(excluded) == 0 {
		return nil
	}
	if r.Exclusions == nil {
		r.Exclusions = make(map[string][]string)
	}
	for _, e := range excluded {
		e = strings.TrimSpace(e)
		if e == "" {
			return fmt.Errorf("%w: exclusion for %q", ErrEmptyName, member)
		}
		if !slices.Contains(r.Exclusions[member], e) {
			r.Exclusions[member] = append(r.Exclusions[member], e)
		}
	}
	return nil
}

// Merge adds the members and exclusions of other to r.
func (r *Roster) Merge(other *Roster) error {
	if other == nil {
		return nil
	}
	for _, m := range other.Members {
		if err := r.AddMember(m); err != nil {
			return err
		}
	}
	for m, excluded := range other.Exclusions {
		if err := r.Exclude(m, excluded...); err != nil {
			return err
		}
	}
	r.Symmetric = r.Symmetric || other.Symmetric
	return nil
}

// ExclusionMap returns the effective exclusions, mirrored in both directions
// when Symmetric is set. Lists are sorted.
func (r *Roster) ExclusionMap() map[string][]string {
	out := make(map[string][]string, len(r.Exclusions))
	add := func(member, excluded string) {
		if !slices.Contains(out[member], excluded) {
			out[member] = append(out[member], excluded)
		}
	}

	for m, excluded := range r.Exclusions {
		for _, e := range excluded {
			add(m, e)
			if r.Symmetric {
				add(e, m)
			}
		}
	}
	for _, excluded := range out {
		sort.Strings(excluded)
	}
	return out
}
