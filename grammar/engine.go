// Package grammar implements the incremental Sequitur constraint engine:
// pushing one terminal at a time into a grammar while maintaining digram
// uniqueness and rule utility after every push.
package grammar

import (
	"github.com/ava12/sequitur/internal/digram"
	"github.com/ava12/sequitur/internal/ruletable"
	"github.com/ava12/sequitur/internal/symbol"
)

// Engine holds one incrementally-built Sequitur grammar over a stream of
// T values. It is not safe for concurrent use — callers serialize access
// the same way a ruletable.Table or symbol.Graph would require.
type Engine[T comparable] struct {
	table   *ruletable.Table[T]
	digrams *digram.Index[T]
	length  int

	// referrers maps a rule id to the set of non-terminal Refs that
	// reference it, kept in step with the id's use count. check_utility
	// needs to name the sole remaining reference when a count drops to
	// 1; a use count alone cannot answer that.
	referrers map[uint32]map[symbol.Ref]struct{}
}

// New creates an Engine with an empty top rule.
func New[T comparable]() *Engine[T] {
	tb := ruletable.New[T]()
	return &Engine[T]{
		table:     tb,
		digrams:   digram.New[T](tb.Graph),
		referrers: make(map[uint32]map[symbol.Ref]struct{}),
	}
}

// Len returns the number of tokens pushed so far.
func (e *Engine[T]) Len() int {
	return e.length
}

// Push appends value to the input stream and restores every invariant
// before returning.
func (e *Engine[T]) Push(value T) {
	top := e.table.TopID()
	tail := e.table.BodyTail(top)

	s := e.table.Graph.NewTerminal(top, value)
	e.table.Graph.InsertAfter(tail, s)
	e.length++

	e.check(tail)
}

// Extend pushes every value in values, in order.
func (e *Engine[T]) Extend(values []T) {
	for _, v := range values {
		e.Push(v)
	}
}

// check restores digram uniqueness around s — the digram (s, s.next) —
// cascading into rule construction, inlining, or both as needed. A
// no-op if s or its successor is a guard.
func (e *Engine[T]) check(s symbol.Ref) {
	g := e.table.Graph
	if g.IsGuard(s) {
		return
	}
	second := g.Next(s)
	if g.IsGuard(second) {
		return
	}

	match, found := e.digrams.Lookup(s)
	if !found {
		e.digrams.Insert(s)
		return
	}
	if match == s {
		return
	}

	// A run of identical symbols produces overlapping occurrences of the
	// same digram identity (e.g. "aaa" has (a,a) at two overlapping
	// positions). Substituting either one would corrupt the chain the
	// other depends on, so such occurrences are left un-indexed until
	// they stop overlapping.
	matchSecond := g.Next(match)
	if matchSecond == s || match == second {
		return
	}

	if ruleID, ok := e.entireRuleBody(match); ok {
		nt := e.substituteExisting(s, ruleID)
		e.checkNewLinks(nt)
	} else {
		e.promote(s, match)
	}
}

// checkNewLinks re-examines the two digrams newly adjacent to nt — the
// one ending at nt and the one starting at it — after nt has just been
// spliced into the grammar. Either check may itself consume nt via a
// further cascade, so its liveness is re-verified before each use.
func (e *Engine[T]) checkNewLinks(nt symbol.Ref) {
	g := e.table.Graph
	if !g.Alive(nt) {
		return
	}

	before := g.Prev(nt)
	if !g.IsGuard(before) {
		e.check(before)
	}

	if !g.Alive(nt) {
		return
	}
	e.check(nt)
}

// entireRuleBody reports whether first (with first.next) is precisely
// the two-symbol body of some non-top rule, and if so, that rule's id.
func (e *Engine[T]) entireRuleBody(first symbol.Ref) (uint32, bool) {
	g := e.table.Graph

	prev := g.Prev(first)
	if !g.IsGuard(prev) {
		return 0, false
	}

	second := g.Next(first)
	after := g.Next(second)
	if !g.IsGuard(after) || prev != after {
		return 0, false
	}

	id := g.RuleOf(prev)
	if e.table.IsTop(id) {
		return 0, false
	}
	return id, true
}

// substituteExisting replaces the digram (first, first.next) with a
// fresh non-terminal referencing ruleID, returning that new symbol. Any
// non-terminal being displaced has its old reference dropped, which may
// itself cascade into inlining or destroying its target rule.
func (e *Engine[T]) substituteExisting(first symbol.Ref, ruleID uint32) symbol.Ref {
	g := e.table.Graph
	second := g.Next(first)
	before := g.Prev(first)

	e.digrams.Remove(before)
	e.digrams.Remove(second)

	firstIsNT := g.Kind(first) == symbol.NonTerminal
	secondIsNT := g.Kind(second) == symbol.NonTerminal
	var firstTarget, secondTarget uint32
	if firstIsNT {
		firstTarget = g.Target(first)
	}
	if secondIsNT {
		secondTarget = g.Target(second)
	}

	// Drop the old references before splicing the replacement in, so a
	// use count can legitimately fall straight to zero when first and
	// second both name the same rule (see the note on dropRef).
	if firstIsNT {
		e.dropRef(firstTarget, first)
	}
	if secondIsNT {
		e.dropRef(secondTarget, second)
	}

	owner := g.RuleOf(first)
	nt := g.NewNonTerminal(owner, ruleID)
	g.ReplaceDigram(first, nt)
	g.Free(first)
	g.Free(second)

	e.addRef(ruleID, nt)

	if firstIsNT {
		e.checkUtility(firstTarget)
	}
	if secondIsNT && !(firstIsNT && secondTarget == firstTarget) {
		e.checkUtility(secondTarget)
	}

	return nt
}

// promote creates a new rule whose body is a copy of the digram at
// match, then replaces both occurrences — at s and at match — with
// non-terminals referencing it, bringing its use count to 2.
func (e *Engine[T]) promote(s, match symbol.Ref) {
	g := e.table.Graph
	matchSecond := g.Next(match)

	ruleID := e.table.CreateRule()
	guard := e.table.Guard(ruleID)

	c1 := e.cloneInto(match, ruleID)
	c2 := e.cloneInto(matchSecond, ruleID)
	g.InsertAfter(guard, c1)
	g.InsertAfter(c1, c2)

	// The index still credits match with this digram's sole occurrence;
	// c1 (match's clone, now living inside the new rule) takes over that
	// role, since match itself is about to be replaced below.
	e.digrams.UpdateOnReplace(match, c1)

	if g.Kind(c1) == symbol.NonTerminal {
		e.addRef(g.Target(c1), c1)
	}
	if g.Kind(c2) == symbol.NonTerminal {
		e.addRef(g.Target(c2), c2)
	}

	// s and match never overlap here (check already ruled that out), so
	// replacing one cannot invalidate the other.
	nt1 := e.substituteExisting(s, ruleID)
	nt2 := e.substituteExisting(match, ruleID)

	e.checkNewLinks(nt1)
	e.checkNewLinks(nt2)
}

func (e *Engine[T]) cloneInto(src symbol.Ref, owner uint32) symbol.Ref {
	g := e.table.Graph
	switch g.Kind(src) {
	case symbol.Terminal:
		return g.NewTerminal(owner, g.Value(src))
	case symbol.NonTerminal:
		return g.NewNonTerminal(owner, g.Target(src))
	default:
		panic("grammar: cannot clone a guard symbol")
	}
}

// addRef records at as a referencing occurrence of rule id and
// increments its use count.
func (e *Engine[T]) addRef(id uint32, at symbol.Ref) {
	set := e.referrers[id]
	if set == nil {
		set = make(map[symbol.Ref]struct{})
		e.referrers[id] = set
	}
	set[at] = struct{}{}
	e.table.IncUse(id)
}

// dropRef removes at from rule id's referrer set and decrements its use
// count, without triggering check_utility — callers that might drop two
// references to the same rule in one operation must finish both drops
// before evaluating utility, so that a use count reaching zero is seen
// as an orphan rather than misread mid-update as a sole-reference rule.
func (e *Engine[T]) dropRef(id uint32, at symbol.Ref) {
	delete(e.referrers[id], at)
	e.table.DecUse(id)
}

// unref is dropRef followed immediately by check_utility, for the
// ordinary case of a single, independent reference going away.
func (e *Engine[T]) unref(id uint32, at symbol.Ref) {
	e.dropRef(id, at)
	e.checkUtility(id)
}

// checkUtility enforces rule utility for id: a non-top rule used by
// fewer than two non-terminals no longer earns its keep. Used exactly
// once, it is inlined at its sole call site; used nowhere, its body is
// discarded outright.
func (e *Engine[T]) checkUtility(id uint32) {
	if e.table.IsTop(id) {
		return
	}

	switch e.table.UseCount(id) {
	case 0:
		e.destroyOrphan(id)
	case 1:
		var n symbol.Ref
		for r := range e.referrers[id] {
			n = r
			break
		}
		e.inline(id, n)
	}
}

// inline splices rule id's body into place at its sole remaining
// reference n, then destroys id.
func (e *Engine[T]) inline(id uint32, n symbol.Ref) {
	g := e.table.Graph
	guard := e.table.Guard(id)
	head := g.Next(guard)
	tail := g.Prev(guard)
	empty := head == guard

	before := g.Prev(n)
	after := g.Next(n)

	e.digrams.Remove(before)
	e.digrams.Remove(n)
	delete(e.referrers[id], n)
	delete(e.referrers, id)
	e.table.DecUse(id)

	if empty {
		g.LinkDirect(before, after)
		g.Free(n)
	} else {
		owner := g.RuleOf(before)
		for p := head; ; p = g.Next(p) {
			g.SetOwner(p, owner)
			if p == tail {
				break
			}
		}
		g.LinkSpan(before, head, tail, after)
		g.Free(n)
		g.Reset(guard)
	}

	e.table.DestroyRule(id)

	e.check(before)
	if !empty {
		e.check(tail)
	}
}

// destroyOrphan discards id's body entirely: id is referenced nowhere,
// so its content is garbage, not grammar. Non-terminals found inside
// cascade into unref on their own targets.
func (e *Engine[T]) destroyOrphan(id uint32) {
	g := e.table.Graph
	guard := e.table.Guard(id)

	for p := g.Next(guard); p != guard; p = g.Next(p) {
		e.digrams.Remove(p)
	}

	p := g.Next(guard)
	for p != guard {
		next := g.Next(p)
		if g.Kind(p) == symbol.NonTerminal {
			e.unref(g.Target(p), p)
		}
		g.Free(p)
		p = next
	}

	g.Reset(guard)
	delete(e.referrers, id)
	e.table.DestroyRule(id)
}
