// Package symbol implements the cyclic doubly-linked symbol graph that
// backs every rule body in the Sequitur grammar.
//
// A Ref is a generational arena index standing in for the raw,
// intrusive-list pointers of the classical C Sequitur implementation: it
// detects any accidental use of a symbol after it has been unlinked and
// recycled, while keeping navigation and comparison O(1).
package symbol

// Kind identifies what a Symbol carries.
type Kind uint8

const (
	// Terminal holds one input value of the generic element type.
	Terminal Kind = iota
	// NonTerminal refers to a rule, representing its expansion.
	NonTerminal
	// Guard is the sentinel marking both ends of a rule body.
	Guard
)

// Ref is a generational reference to a Symbol. The zero Ref is never
// returned by Graph's New* constructors and never refers to a live
// symbol; it is safe to use as a "no symbol" sentinel, and it is the
// prev/next of a terminal or non-terminal not yet spliced in.
type Ref struct {
	index uint32
	gen   uint32
}

// Valid reports whether r could refer to a live symbol. It does not by
// itself guarantee the symbol is still alive — a stale Ref from a freed
// generation is also reported as invalid by Graph accessors.
func (r Ref) Valid() bool {
	return r.gen != 0
}

// node is the arena-resident representation of one symbol.
type node[T any] struct {
	gen    uint32
	kind   Kind
	value  T
	target uint32 // rule id referenced, when kind == NonTerminal
	owner  uint32 // rule id whose body this symbol belongs to
	prev   Ref
	next   Ref
}
