package matcher

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/han-tyumi/secret-santa/internal/roster"
)

// firstSource makes every rng.Intn call return 0, so each draw takes the
// first candidate in sorted order.
type firstSource struct{}

func (firstSource) Int63() int64 { return 0 }
func (firstSource) Seed(int64)   {}

func newMatcher(t *testing.T, members []string, exclusions map[string][]string) *Matcher {
	t.Helper()

	r, err := roster.New(members, exclusions)
	require.NoError(t, err)

	m, err := New(r)
	require.NoError(t, err)
	return m
}

// oneExclusionEach builds n members where each excludes one other member
// chosen at random.
func oneExclusionEach(rng *rand.Rand, n int) ([]string, map[string][]string) {
	members := make([]string, n)
	for i := range members {
		members[i] = fmt.Sprintf("m%02d", i)
	}

	exclusions := make(map[string][]string, n)
	for i, m := range members {
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		exclusions[m] = []string{members[j]}
	}
	return members, exclusions
}
