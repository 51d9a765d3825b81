// Package matcher draws a complete assignment of recipients from a roster.
//
// Draws resolve the most constrained members first: each wave takes the
// members sharing the smallest candidate pool, assigns each a random
// candidate, removes that candidate from everyone else's pool, and then
// recomputes who is most constrained. The heuristic never backtracks, so a
// draw can fail with ErrUnsatisfiable even when a valid assignment exists.
// Callers retry with fresh randomness.
package matcher

import (
	"fmt"
	"math/rand"

	"github.com/han-tyumi/secret-santa/internal/roster"
)

// Matcher generates assignments for a fixed roster.
// It holds no mutable state and is safe for concurrent use as long as each
// caller supplies its own random source.
type Matcher struct {
	roster *roster.Roster
}

// New creates a matcher for r.
func New(r *roster.Roster) (*Matcher, error) {
	if r == nil {
		return nil, ErrNilRoster
	}
	for _, m := range r.Members() {
		if r.Pool(m).Len() == 0 {
			return nil, fmt.Errorf("matcher: %w", &roster.EmptyCandidatePoolError{Member: m})
		}
	}
	return &Matcher{roster: r}, nil
}

// Roster returns the roster the matcher draws from.
func (m *Matcher) Roster() *roster.Roster {
	return m.roster
}

// Generate performs one draw using rng for every random choice.
//
// Given the same roster and an rng in the same state, Generate returns the
// same assignment. On failure it returns an *UnsatisfiableError and no
// partial assignment.
func (m *Matcher) Generate(rng *rand.Rand) (Assignment, error) {
	pools := m.roster.Clone()
	result := make(Assignment, len(pools))
	wave := m.roster.PriorityGroup()

	for {
		for _, member := range wave {
			candidates := pools[member]
			if candidates.Len() == 0 {
				return nil, &UnsatisfiableError{Member: member, Assigned: len(result)}
			}

			recipient := candidates.At(rng.Intn(candidates.Len()))
			result[member] = recipient
			delete(pools, member)

			if len(pools) == 0 {
				return result, nil
			}

			for _, p := range pools {
				p.Remove(recipient)
			}
		}

		wave = roster.Priority(pools)
	}
}
