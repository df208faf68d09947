// Package ids allocates rule identifiers for the Sequitur grammar engine.
package ids

// TopRuleID is the identifier conventionally assigned to the grammar's
// top rule.
const TopRuleID = 0

// Allocator issues distinct rule identifiers, reusing freed ones before
// minting fresh ones to keep ids dense. No ordering contract between
// Allocate/Free calls is exposed beyond LIFO reuse.
type Allocator struct {
	next  uint32
	freed []uint32
}

// New creates an empty Allocator; the first Allocate call returns TopRuleID.
func New() *Allocator {
	return &Allocator{}
}

// Allocate returns a fresh or reused rule id.
func (a *Allocator) Allocate() uint32 {
	if n := len(a.freed); n > 0 {
		id := a.freed[n-1]
		a.freed = a.freed[:n-1]
		return id
	}

	id := a.next
	a.next++
	return id
}

// Free returns id to the pool for reuse.
func (a *Allocator) Free(id uint32) {
	if id >= a.next {
		panic("ids: freeing an id that was never allocated")
	}
	a.freed = append(a.freed, id)
}
