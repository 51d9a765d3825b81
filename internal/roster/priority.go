package roster

import (
	"sort"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// Pools maps each unassigned member to its current candidate pool.
type Pools map[string]*Pool

// Clone deep-copies every pool.
func (ps Pools) Clone() Pools {
	clone := make(Pools, len(ps))
	for m, p := range ps {
		clone[m] = p.Clone()
	}
	return clone
}

// Members returns the pooled members in sorted order.
func (ps Pools) Members() []string {
	members := make([]string, 0, len(ps))
	for m := range ps {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

// group is a set of members currently sharing one pool signature.
type group struct {
	signature Signature
	poolSize  int
	members   []string
}

// byUrgency orders groups smallest pool first, then larger group first.
// Remaining ties fall back to the group's first member so the choice does
// not depend on map iteration order.
func byUrgency(a, b any) int {
	ga, gb := a.(*group), b.(*group)
	switch {
	case ga.poolSize != gb.poolSize:
		return ga.poolSize - gb.poolSize
	case len(ga.members) != len(gb.members):
		return len(gb.members) - len(ga.members)
	case ga.members[0] < gb.members[0]:
		return -1
	case ga.members[0] > gb.members[0]:
		return 1
	}
	return 0
}

// Priority returns the members that should be resolved next: those sharing
// the smallest pool, preferring the largest group of members competing for
// identical candidates. Members are returned in sorted order. An empty pools
// map yields nil.
func Priority(pools Pools) []string {
	groups := make(map[Signature]*group)
	for _, m := range pools.Members() {
		p := pools[m]
		sig := p.Signature()
		g, ok := groups[sig]
		if !ok {
			g = &group{signature: sig, poolSize: p.Len()}
			groups[sig] = g
		}
		g.members = append(g.members, m)
	}

	queue := priorityqueue.NewWith(byUrgency)
	for _, g := range groups {
		queue.Enqueue(g)
	}

	top, ok := queue.Dequeue()
	if !ok {
		return nil
	}
	return top.(*group).members
}
