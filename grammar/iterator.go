package grammar

import "github.com/ava12/sequitur/internal/symbol"

// Iterator replays the original input stream by walking the grammar
// depth-first, expanding every non-terminal it encounters. It holds a
// stack no deeper than the grammar's nesting depth, never the length of
// the reconstructed stream.
type Iterator[T comparable] struct {
	e     *Engine[T]
	pos   symbol.Ref
	stack []symbol.Ref
	done  bool
}

// Iterator returns a fresh Iterator positioned at the start of e's
// input stream. Mutating e afterward invalidates any Iterator taken
// from it.
func (e *Engine[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{e: e, pos: e.table.BodyHead(e.table.TopID())}
	it.resolve()
	return it
}

// resolve advances pos, descending into non-terminals and popping back
// out of exhausted rule bodies, until it lands on a terminal or the
// entire stream is exhausted.
func (it *Iterator[T]) resolve() {
	g := it.e.table.Graph
	for {
		if g.IsGuard(it.pos) {
			if len(it.stack) == 0 {
				it.done = true
				return
			}
			parent := it.stack[len(it.stack)-1]
			it.stack = it.stack[:len(it.stack)-1]
			it.pos = g.Next(parent)
			continue
		}

		if g.Kind(it.pos) == symbol.NonTerminal {
			target := g.Target(it.pos)
			it.stack = append(it.stack, it.pos)
			it.pos = it.e.table.BodyHead(target)
			continue
		}

		return
	}
}

// Next returns the next token in the reconstructed stream, and false
// once the stream is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}

	g := it.e.table.Graph
	v := g.Value(it.pos)
	it.pos = g.Next(it.pos)
	it.resolve()
	return v, true
}
