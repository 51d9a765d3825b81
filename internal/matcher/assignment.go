package matcher

import (
	"fmt"
	"sort"

	"github.com/han-tyumi/secret-santa/internal/roster"
)

// Assignment maps each member to the recipient they were drawn.
type Assignment map[string]string

// Pair is a single assigner and recipient.
type Pair struct {
	From string
	To   string
}

// Sorted returns the assignment ordered by assigner.
func (a Assignment) Sorted() []Pair {
	pairs := make([]Pair, 0, len(a))
	for from, to := range a {
		pairs = append(pairs, Pair{From: from, To: to})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].From < pairs[j].From
	})
	return pairs
}

// Validate checks that a is a complete draw for r: every member assigns
// exactly once, nobody draws themselves or an excluded member, and no
// recipient is drawn twice.
func (a Assignment) Validate(r *roster.Roster) error {
	if len(a) != r.Len() {
		return fmt.Errorf("%w: %d assignments for %d members", ErrInvalidAssignment, len(a), r.Len())
	}

	drawn := make(map[string]string, len(a))
	for _, p := range a.Sorted() {
		switch {
		case !r.Has(p.From):
			return fmt.Errorf("%w: %q is not a member", ErrInvalidAssignment, p.From)
		case !r.Has(p.To):
			return fmt.Errorf("%w: %q drew non-member %q", ErrInvalidAssignment, p.From, p.To)
		case p.From == p.To:
			return fmt.Errorf("%w: %q drew themselves", ErrInvalidAssignment, p.From)
		case r.Excludes(p.From, p.To):
			return fmt.Errorf("%w: %q drew excluded %q", ErrInvalidAssignment, p.From, p.To)
		}
		if prev, ok := drawn[p.To]; ok {
			return fmt.Errorf("%w: %q drawn by both %q and %q", ErrInvalidAssignment, p.To, prev, p.From)
		}
		drawn[p.To] = p.From
	}
	return nil
}
