// Package ruletable stores every rule in a Sequitur grammar: its guard
// symbol and its use count (the number of non-terminals referencing it).
package ruletable

import (
	"github.com/ava12/sequitur/internal/ids"
	"github.com/ava12/sequitur/internal/symbol"
)

// Table owns the symbol graph shared by every rule body, plus the
// rule-id -> guard mapping and use-count bookkeeping.
type Table[T any] struct {
	Graph *symbol.Graph[T]

	alloc    *ids.Allocator
	guards   map[uint32]symbol.Ref
	useCount map[uint32]int
	top      uint32
}

// New creates a Table with its top rule already allocated and empty.
func New[T any]() *Table[T] {
	tb := &Table[T]{
		Graph:    symbol.New[T](),
		alloc:    ids.New(),
		guards:   make(map[uint32]symbol.Ref),
		useCount: make(map[uint32]int),
	}

	tb.top = tb.CreateRule()
	return tb
}

// TopID returns the id of the grammar's top rule.
func (tb *Table[T]) TopID() uint32 {
	return tb.top
}

// IsTop reports whether id is the top rule.
func (tb *Table[T]) IsTop(id uint32) bool {
	return id == tb.top
}

// CreateRule allocates a fresh rule id, creates its guard, and returns
// the id. The new rule starts with use count 0 and an empty body.
func (tb *Table[T]) CreateRule() uint32 {
	id := tb.alloc.Allocate()
	tb.guards[id] = tb.Graph.NewGuard(id)
	tb.useCount[id] = 0
	return id
}

// Exists reports whether id names a currently live rule.
func (tb *Table[T]) Exists(id uint32) bool {
	_, ok := tb.guards[id]
	return ok
}

// Guard returns the guard symbol for rule id.
func (tb *Table[T]) Guard(id uint32) symbol.Ref {
	g, ok := tb.guards[id]
	if !ok {
		panic("ruletable: unknown rule id")
	}
	return g
}

// BodyHead returns the first symbol of id's body, or the guard itself if
// the body is empty.
func (tb *Table[T]) BodyHead(id uint32) symbol.Ref {
	return tb.Graph.Next(tb.Guard(id))
}

// BodyTail returns the last symbol of id's body, or the guard itself if
// the body is empty.
func (tb *Table[T]) BodyTail(id uint32) symbol.Ref {
	return tb.Graph.Prev(tb.Guard(id))
}

// IsEmpty reports whether id's body has no symbols.
func (tb *Table[T]) IsEmpty(id uint32) bool {
	return tb.BodyHead(id) == tb.Guard(id)
}

// UseCount returns the number of non-terminal symbols referencing id.
func (tb *Table[T]) UseCount(id uint32) int {
	return tb.useCount[id]
}

// IncUse increments id's use count.
func (tb *Table[T]) IncUse(id uint32) {
	tb.useCount[id]++
}

// DecUse decrements id's use count. Panics if it is already zero.
func (tb *Table[T]) DecUse(id uint32) {
	if tb.useCount[id] == 0 {
		panic("ruletable: use count underflow")
	}
	tb.useCount[id]--
}

// DestroyRule releases id's guard and returns id to the allocator.
// Precondition: UseCount(id) == 0 and the body is empty (its contents
// must already have been moved out by the caller).
func (tb *Table[T]) DestroyRule(id uint32) {
	if tb.useCount[id] != 0 {
		panic("ruletable: destroying a rule with nonzero use count")
	}
	if !tb.IsEmpty(id) {
		panic("ruletable: destroying a rule with a non-empty body")
	}

	tb.Graph.Free(tb.guards[id])
	delete(tb.guards, id)
	delete(tb.useCount, id)
	tb.alloc.Free(id)
}

// RuleIDs returns every currently live rule id, including the top rule,
// in no particular order.
func (tb *Table[T]) RuleIDs() []uint32 {
	ids := make([]uint32, 0, len(tb.guards))
	for id := range tb.guards {
		ids = append(ids, id)
	}
	return ids
}
