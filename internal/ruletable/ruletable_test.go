package ruletable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopRuleIsEmptyAtStart(t *testing.T) {
	tb := New[rune]()
	assert.True(t, tb.IsTop(tb.TopID()))
	assert.True(t, tb.IsEmpty(tb.TopID()))
	assert.Equal(t, 0, tb.UseCount(tb.TopID()))
}

func TestCreateRuleStartsEmptyAndUnused(t *testing.T) {
	tb := New[rune]()
	id := tb.CreateRule()
	assert.NotEqual(t, tb.TopID(), id)
	assert.True(t, tb.IsEmpty(id))
	assert.Equal(t, 0, tb.UseCount(id))
	assert.False(t, tb.IsTop(id))
}

func TestUseCountIncDec(t *testing.T) {
	tb := New[rune]()
	id := tb.CreateRule()
	tb.IncUse(id)
	tb.IncUse(id)
	assert.Equal(t, 2, tb.UseCount(id))
	tb.DecUse(id)
	assert.Equal(t, 1, tb.UseCount(id))
}

func TestDestroyRuleReturnsID(t *testing.T) {
	tb := New[rune]()
	id := tb.CreateRule()
	tb.DestroyRule(id)

	id2 := tb.CreateRule()
	assert.Equal(t, id, id2)
}

func TestDestroyNonEmptyRulePanics(t *testing.T) {
	tb := New[rune]()
	id := tb.CreateRule()
	s := tb.Graph.NewTerminal(id, 'x')
	tb.Graph.InsertAfter(tb.Guard(id), s)

	require.Panics(t, func() { tb.DestroyRule(id) })
}

func TestDestroyUsedRulePanics(t *testing.T) {
	tb := New[rune]()
	id := tb.CreateRule()
	tb.IncUse(id)

	require.Panics(t, func() { tb.DestroyRule(id) })
}
