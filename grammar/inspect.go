package grammar

import (
	"github.com/ava12/sequitur"
	"github.com/ava12/sequitur/internal/symbol"
)

// ErrUnknownRule is returned by RuleView methods given an id that names
// no currently live rule.
var ErrUnknownRule = sequitur.FormatError(sequitur.GrammarErrors, "unknown rule id")

// Stats summarizes the current grammar's shape.
type Stats struct {
	InputLength        int
	RuleCount          int
	GrammarSymbolCount int
	CompressionRatio   float64
}

// Stats reports the current grammar's size relative to the input
// consumed so far. CompressionRatio is GrammarSymbolCount / InputLength,
// zero when nothing has been pushed yet.
func (e *Engine[T]) Stats() Stats {
	ids := e.table.RuleIDs()
	total := 0
	for _, id := range ids {
		total += e.bodyLength(id)
	}

	ratio := 0.0
	if e.length > 0 {
		ratio = float64(total) / float64(e.length)
	}

	return Stats{
		InputLength:        e.length,
		RuleCount:          len(ids),
		GrammarSymbolCount: total,
		CompressionRatio:   ratio,
	}
}

func (e *Engine[T]) bodyLength(id uint32) int {
	g := e.table.Graph
	guard := e.table.Guard(id)
	n := 0
	for p := g.Next(guard); p != guard; p = g.Next(p) {
		n++
	}
	return n
}

// RuleSymbol is one entry of a rule's body, as exposed by RuleView.
type RuleSymbol[T comparable] struct {
	IsTerminal bool
	Value      T      // meaningful iff IsTerminal
	RuleRef    uint32 // meaningful iff !IsTerminal
}

// RuleView exposes read-only inspection of the current grammar's rule
// table, for serialization or diagnostics.
type RuleView[T comparable] struct {
	e *Engine[T]
}

// Rules returns a read-only view over e's current rule table.
func (e *Engine[T]) Rules() RuleView[T] {
	return RuleView[T]{e: e}
}

// IDs returns every currently live rule id, including the top rule.
func (v RuleView[T]) IDs() []uint32 {
	return v.e.table.RuleIDs()
}

// TopID returns the id of the top rule.
func (v RuleView[T]) TopID() uint32 {
	return v.e.table.TopID()
}

// IsTop reports whether id is the top rule.
func (v RuleView[T]) IsTop(id uint32) bool {
	return v.e.table.IsTop(id)
}

// UseCount reports how many non-terminals reference id. Returns
// ErrUnknownRule if id names no live rule.
func (v RuleView[T]) UseCount(id uint32) (int, error) {
	if !v.e.table.Exists(id) {
		return 0, ErrUnknownRule
	}
	return v.e.table.UseCount(id), nil
}

// Symbols returns id's body as a flat slice, in order. Returns
// ErrUnknownRule if id names no live rule.
func (v RuleView[T]) Symbols(id uint32) ([]RuleSymbol[T], error) {
	if !v.e.table.Exists(id) {
		return nil, ErrUnknownRule
	}

	g := v.e.table.Graph
	guard := v.e.table.Guard(id)

	var out []RuleSymbol[T]
	for p := g.Next(guard); p != guard; p = g.Next(p) {
		if g.Kind(p) == symbol.Terminal {
			out = append(out, RuleSymbol[T]{IsTerminal: true, Value: g.Value(p)})
		} else {
			out = append(out, RuleSymbol[T]{RuleRef: g.Target(p)})
		}
	}
	return out, nil
}
