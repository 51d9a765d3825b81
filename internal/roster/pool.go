package roster

import (
	"encoding/binary"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/zeebo/xxh3"
)

// Pool is the ordered set of recipients a member may still be assigned to.
//
// Members are kept sorted so that indexing into a pool, and therefore every
// random draw made against it, is reproducible under a fixed seed.
type Pool struct {
	set *treeset.Set
}

// NewPool creates a pool holding the given members.
func NewPool(members ...string) *Pool {
	p := &Pool{set: treeset.NewWith(utils.StringComparator)}
	for _, m := range members {
		p.set.Add(m)
	}
	return p
}

// Len returns the number of candidates left in the pool.
func (p *Pool) Len() int {
	return p.set.Size()
}

// Contains reports whether member is still a candidate.
func (p *Pool) Contains(member string) bool {
	return p.set.Contains(member)
}

// Remove drops member from the pool. Removing an absent member is a no-op.
func (p *Pool) Remove(member string) {
	p.set.Remove(member)
}

// At returns the i-th candidate in sorted order.
func (p *Pool) At(i int) string {
	it := p.set.Iterator()
	for it.Next() {
		if it.Index() == i {
			return it.Value().(string)
		}
	}
	panic(fmt.Sprintf("roster: pool index %d out of range [0, %d)", i, p.Len()))
}

// Members returns the candidates in sorted order.
func (p *Pool) Members() []string {
	out := make([]string, 0, p.set.Size())
	for _, v := range p.set.Values() {
		out = append(out, v.(string))
	}
	return out
}

// Clone creates an independent copy of the pool.
func (p *Pool) Clone() *Pool {
	clone := &Pool{set: treeset.NewWith(utils.StringComparator)}
	clone.set.Add(p.set.Values()...)
	return clone
}

// Signature returns the canonical digest of the pool's current contents.
func (p *Pool) Signature() Signature {
	var buf []byte
	for _, v := range p.set.Values() {
		m := v.(string)
		buf = binary.AppendUvarint(buf, uint64(len(m)))
		buf = append(buf, m...)
	}
	return Signature(xxh3.Hash128(buf))
}

// Signature groups members whose pools hold exactly the same candidates.
// It is recomputed from pool contents whenever it is needed.
type Signature xxh3.Uint128

func (s Signature) String() string {
	return fmt.Sprintf("%016x%016x", s.Hi, s.Lo)
}
