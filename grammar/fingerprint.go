package grammar

import (
	"fmt"

	"github.com/segmentio/fasthash/fnv1a"

	"github.com/ava12/sequitur/internal/symbol"
)

// Fingerprint returns a diagnostic hash of the current grammar's
// structure, canonicalized so that two grammars differing only in rule
// numbering hash identically. It walks the top rule depth-first,
// assigning each rule a canonical index the first time it is reached
// and folding, for every symbol visited, either a terminal's value or a
// back-reference to a rule's canonical index into a running FNV-1a
// accumulator.
//
// Two engines fed the same input, incrementally or in one Extend call,
// produce the same Fingerprint — useful for regression-testing the
// incremental algorithm against a batch rebuild of the same stream.
func (e *Engine[T]) Fingerprint() uint64 {
	canon := make(map[uint32]uint32)
	h := fnv1a.Init64
	e.fingerprintRule(e.table.TopID(), canon, &h)
	return h
}

func (e *Engine[T]) fingerprintRule(id uint32, canon map[uint32]uint32, h *uint64) {
	idx := uint32(len(canon))
	canon[id] = idx
	*h = fnv1a.AddUint64(*h, uint64(idx))

	g := e.table.Graph
	guard := e.table.Guard(id)
	for p := g.Next(guard); p != guard; p = g.Next(p) {
		if g.Kind(p) == symbol.Terminal {
			*h = fnv1a.AddUint64(*h, 0)
			*h = fnv1a.AddString64(*h, fmt.Sprintf("%v", g.Value(p)))
			continue
		}

		target := g.Target(p)
		*h = fnv1a.AddUint64(*h, 1)
		if ci, seen := canon[target]; seen {
			*h = fnv1a.AddUint64(*h, uint64(ci))
			continue
		}
		e.fingerprintRule(target, canon, h)
	}
}
