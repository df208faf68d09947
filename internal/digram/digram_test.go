package digram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava12/sequitur/internal/symbol"
)

func chain(g *symbol.Graph[rune], values ...rune) symbol.Ref {
	guard := g.NewGuard(0)
	prev := guard
	for _, v := range values {
		s := g.NewTerminal(0, v)
		g.InsertAfter(prev, s)
		prev = s
	}
	return guard
}

func TestInsertAndLookup(t *testing.T) {
	g := symbol.New[rune]()
	guard := chain(g, 'a', 'b', 'c')
	idx := New(g)

	a := g.Next(guard)
	b := g.Next(a)

	idx.Insert(a)
	found, ok := idx.Lookup(a)
	assert.True(t, ok)
	assert.Equal(t, a, found)

	// (b, c) is a distinct, unindexed digram.
	_, ok = idx.Lookup(b)
	assert.False(t, ok)
}

func TestGuardSidesNeverIndexed(t *testing.T) {
	g := symbol.New[rune]()
	guard := chain(g, 'a')
	idx := New(g)

	// digram (guard, a) — guard is the left side.
	idx.Insert(guard)
	assert.Equal(t, 0, idx.Len())

	a := g.Next(guard)
	// digram (a, guard) — guard is the right side (a is the last symbol).
	idx.Insert(a)
	assert.Equal(t, 0, idx.Len())
}

func TestRemoveOnlyIfStillOwner(t *testing.T) {
	g := symbol.New[rune]()
	guard := chain(g, 'a', 'b')
	idx := New(g)
	a := g.Next(guard)
	idx.Insert(a)

	// Removing from an unrelated symbol with the same digram identity
	// must not disturb a's entry.
	otherGuard := g.NewGuard(0)
	other := g.NewTerminal(0, 'a')
	b := g.NewTerminal(0, 'b')
	g.InsertAfter(otherGuard, other)
	g.InsertAfter(other, b)
	idx.Remove(other)
	_, ok := idx.Lookup(a)
	assert.True(t, ok)

	idx.Remove(a)
	_, ok = idx.Lookup(a)
	assert.False(t, ok)
}
