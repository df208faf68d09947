// Package digram implements the global digram occurrence index: a
// mapping from digram identity (the kind+payload of two adjacent
// symbols) to the left-hand symbol of the sole occurrence the
// digram-uniqueness invariant permits.
//
// Because the generic terminal type T is constrained to comparable, the
// identity of a symbol (its kind plus its payload) is itself a plain
// comparable Go value; a native map keyed on a pair of identities gives
// exact, collision-free lookup for free, with no separate hash-and-verify
// step required.
package digram

import "github.com/ava12/sequitur/internal/symbol"

type ident[T comparable] struct {
	nonTerminal bool
	target      uint32
	value       T
}

type key[T comparable] [2]ident[T]

// Index maps digram identity to the left-hand symbol of its sole
// recorded occurrence.
type Index[T comparable] struct {
	graph *symbol.Graph[T]
	occur map[key[T]]symbol.Ref
}

// New creates an Index backed by graph. graph must outlive the Index.
func New[T comparable](graph *symbol.Graph[T]) *Index[T] {
	return &Index[T]{graph: graph, occur: make(map[key[T]]symbol.Ref)}
}

func (idx *Index[T]) identOf(r symbol.Ref) ident[T] {
	switch idx.graph.Kind(r) {
	case symbol.Terminal:
		return ident[T]{value: idx.graph.Value(r)}
	case symbol.NonTerminal:
		return ident[T]{nonTerminal: true, target: idx.graph.Target(r)}
	default:
		panic("digram: guard symbols have no digram identity")
	}
}

// keyOf returns the digram key for (s, s.next) and whether one exists at
// all — it does not if either side is a guard.
func (idx *Index[T]) keyOf(s symbol.Ref) (key[T], bool) {
	if idx.graph.IsGuard(s) {
		return key[T]{}, false
	}

	next := idx.graph.Next(s)
	if idx.graph.IsGuard(next) {
		return key[T]{}, false
	}

	return key[T]{idx.identOf(s), idx.identOf(next)}, true
}

// Lookup returns the recorded occurrence of the digram (s, s.next), if
// any.
func (idx *Index[T]) Lookup(s symbol.Ref) (symbol.Ref, bool) {
	k, ok := idx.keyOf(s)
	if !ok {
		return symbol.Ref{}, false
	}

	r, found := idx.occur[k]
	return r, found
}

// Insert records s as the occurrence of (s, s.next). Precondition: no
// entry currently exists for that digram. A no-op if either side is a
// guard.
func (idx *Index[T]) Insert(s symbol.Ref) {
	k, ok := idx.keyOf(s)
	if !ok {
		return
	}

	if _, exists := idx.occur[k]; exists {
		panic("digram: inserting over an existing occurrence")
	}
	idx.occur[k] = s
}

// Remove erases the entry for (s, s.next) iff it currently points at s.
// A no-op if either side is a guard, or if some other location now owns
// the entry.
func (idx *Index[T]) Remove(s symbol.Ref) {
	k, ok := idx.keyOf(s)
	if !ok {
		return
	}

	if cur, exists := idx.occur[k]; exists && cur == s {
		delete(idx.occur, k)
	}
}

// UpdateOnReplace removes whatever entry oldLeft's digram held and
// records newSymbol as the occurrence of (newSymbol, newSymbol.next)
// instead — a convenience for the common case of a symbol being
// replaced in place while its right neighbor is unchanged.
func (idx *Index[T]) UpdateOnReplace(oldLeft, newSymbol symbol.Ref) {
	idx.Remove(oldLeft)
	idx.Insert(newSymbol)
}

// Len returns the number of distinct digrams currently indexed.
func (idx *Index[T]) Len() int {
	return len(idx.occur)
}
