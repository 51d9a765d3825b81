package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_SortedAndIndexed(t *testing.T) {
	p := NewPool("carol", "alice", "bob")

	require.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"alice", "bob", "carol"}, p.Members())
	assert.Equal(t, "alice", p.At(0))
	assert.Equal(t, "carol", p.At(2))
	assert.Panics(t, func() { p.At(3) })
}

func TestPool_Remove(t *testing.T) {
	p := NewPool("alice", "bob")

	p.Remove("alice")
	p.Remove("nobody")

	assert.False(t, p.Contains("alice"))
	assert.True(t, p.Contains("bob"))
	assert.Equal(t, 1, p.Len())
}

func TestPool_CloneIsIndependent(t *testing.T) {
	p := NewPool("alice", "bob")
	clone := p.Clone()

	clone.Remove("alice")

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1, clone.Len())
}

func TestPool_Signature(t *testing.T) {
	a := NewPool("alice", "bob")
	b := NewPool("bob", "alice")
	assert.Equal(t, a.Signature(), b.Signature(), "insertion order must not matter")

	// Length prefixes keep concatenations apart.
	c := NewPool("ab", "c")
	d := NewPool("a", "bc")
	assert.NotEqual(t, c.Signature(), d.Signature())

	b.Remove("bob")
	assert.NotEqual(t, a.Signature(), b.Signature())
	assert.Len(t, a.Signature().String(), 32)
}

func TestPriority(t *testing.T) {
	tests := []struct {
		name  string
		pools Pools
		want  []string
	}{
		{
			name:  "empty",
			pools: Pools{},
			want:  nil,
		},
		{
			name: "smallest pool first",
			pools: Pools{
				"a": NewPool("b", "c"),
				"b": NewPool("c"),
				"c": NewPool("a", "b"),
			},
			want: []string{"b"},
		},
		{
			name: "larger group wins a size tie",
			pools: Pools{
				"a": NewPool("e"),
				"b": NewPool("d"),
				"c": NewPool("d"),
				"d": NewPool("a", "b"),
			},
			want: []string{"b", "c"},
		},
		{
			name: "first member breaks remaining ties",
			pools: Pools{
				"c": NewPool("a", "b"),
				"b": NewPool("a", "c"),
				"a": NewPool("b", "c"),
			},
			want: []string{"a"},
		},
		{
			name: "empty pool is most urgent",
			pools: Pools{
				"a": NewPool(),
				"b": NewPool("a"),
			},
			want: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Priority(tt.pools))
		})
	}
}

func TestPools_Clone(t *testing.T) {
	pools := Pools{"a": NewPool("b"), "b": NewPool("a")}
	clone := pools.Clone()

	clone["a"].Remove("b")
	delete(clone, "b")

	assert.Equal(t, 1, pools["a"].Len())
	assert.Len(t, pools, 2)
	assert.Equal(t, []string{"a", "b"}, pools.Members())
}
