// Package roster holds the members of a draw and derives, for each of them,
// the pool of recipients they may be assigned to.
//
// A Roster is immutable once built and may be shared by any number of
// concurrent draws; each draw works on its own copy obtained from Clone.
package roster

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/han-tyumi/secret-santa/internal/logging"
)

// Roster is the validated set of members, their exclusions and the
// candidate pools derived from them.
type Roster struct {
	members    []string
	exclusions map[string]map[string]struct{}
	pools      Pools
	priority   []string
}

// New builds a roster from member names and per-member exclusions.
//
// Members missing from exclusions exclude nobody. Every member implicitly
// excludes itself. Exclusions naming unknown members are ignored, or rejected
// with ErrUnknownMember when WithStrict is given.
//
// If any member ends up with no possible recipient, New returns an error
// wrapping one *EmptyCandidatePoolError per such member.
func New(members []string, exclusions map[string][]string, opts ...Option) (*Roster, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	logger := logging.OrNop(o.logger)

	names, err := normalizeMembers(members)
	if err != nil {
		return nil, err
	}

	r := &Roster{
		members:    names,
		exclusions: make(map[string]map[string]struct{}, len(names)),
		pools:      make(Pools, len(names)),
	}
	for _, m := range names {
		r.exclusions[m] = map[string]struct{}{}
	}

	if err := r.addExclusions(exclusions, o.strict, logger); err != nil {
		return nil, err
	}

	var errs error
	for _, m := range names {
		pool := NewPool()
		for _, candidate := range names {
			if candidate == m || r.Excludes(m, candidate) {
				continue
			}
			pool.set.Add(candidate)
		}
		if pool.Len() == 0 {
			errs = multierr.Append(errs, &EmptyCandidatePoolError{Member: m})
		}
		r.pools[m] = pool
	}
	if errs != nil {
		return nil, errs
	}

	r.priority = Priority(r.pools)
	logger.Debug("roster built", "members", len(names), "priority", r.priority)

	return r, nil
}

// normalizeMembers trims, validates and sorts member names.
func normalizeMembers(members []string) ([]string, error) {
	seen := make(map[string]struct{}, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		name := strings.TrimSpace(m)
		if name == "" {
			return nil, ErrEmptyMember
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMember, name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientMembers, len(names))
	}
	sort.Strings(names)
	return names, nil
}

func (r *Roster) addExclusions(exclusions map[string][]string, strict bool, logger logging.Logger) error {
	keys := make([]string, 0, len(exclusions))
	for k := range exclusions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, rawMember := range keys {
		excluded := exclusions[rawMember]
		member := strings.TrimSpace(rawMember)
		set, ok := r.exclusions[member]
		if !ok {
			if strict {
				return fmt.Errorf("%w: exclusions given for %q", ErrUnknownMember, member)
			}
			logger.Warn("ignoring exclusions for unknown member", "member", member)
			continue
		}
		for _, raw := range excluded {
			name := strings.TrimSpace(raw)
			if name == member {
				continue
			}
			if _, ok := r.exclusions[name]; !ok {
				if strict {
					return fmt.Errorf("%w: %q excludes %q", ErrUnknownMember, member, name)
				}
				logger.Warn("ignoring unknown excluded member", "member", member, "excluded", name)
				continue
			}
			set[name] = struct{}{}
		}
	}
	return nil
}

// Members returns all members in sorted order.
func (r *Roster) Members() []string {
	return append([]string(nil), r.members...)
}

// Len returns the number of members.
func (r *Roster) Len() int {
	return len(r.members)
}

// Has reports whether name is a member of the roster.
func (r *Roster) Has(name string) bool {
	_, ok := r.exclusions[name]
	return ok
}

// Excludes reports whether member must not be assigned to other.
// A member always excludes itself.
func (r *Roster) Excludes(member, other string) bool {
	if member == other {
		return true
	}
	_, ok := r.exclusions[member][other]
	return ok
}

// Exclusions returns the explicit exclusions of member in sorted order.
func (r *Roster) Exclusions(member string) []string {
	out := make([]string, 0, len(r.exclusions[member]))
	for name := range r.exclusions[member] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Pool returns a copy of the initial candidate pool of member, or nil if
// member is not on the roster.
func (r *Roster) Pool(member string) *Pool {
	p, ok := r.pools[member]
	if !ok {
		return nil
	}
	return p.Clone()
}

// PriorityGroup returns the members to resolve first in every draw.
func (r *Roster) PriorityGroup() []string {
	return append([]string(nil), r.priority...)
}

// Pools returns a snapshot of every member's initial candidate pool, each in
// sorted order. The snapshot shares nothing with the roster.
func (r *Roster) Pools() map[string][]string {
	out := make(map[string][]string, len(r.pools))
	for m, p := range r.pools {
		out[m] = p.Members()
	}
	return out
}

// Clone returns a mutable working copy of all candidate pools.
// Changes to the copy never affect the roster.
func (r *Roster) Clone() Pools {
	return r.pools.Clone()
}
