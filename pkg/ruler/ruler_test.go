package ruler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ruleFn is a trivial payload type for tests. Using distinct int IDs
// makes function identity checkable without comparing func pointers.
type ruleFn struct{ id int }

func fn(id int) ruleFn { return ruleFn{id: id} }

func ids(list []ruleFn) []int {
	out := make([]int, 0, len(list))
	for _, f := range list {
		out = append(out, f.id)
	}
	return out
}

func newTestRuler() *Ruler[ruleFn] {
	r := New[ruleFn]()
	r.Push("alpha", fn(1))
	r.Push("beta", fn(2))
	r.Push("gamma", fn(3))
	return r
}

func TestRuler_PushOrder(t *testing.T) {
	r := newTestRuler()
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, r.Names())
	assert.Equal(t, []int{1, 2, 3}, ids(r.GetRules(DefaultChain)))
}

func TestRuler_Before(t *testing.T) {
	r := newTestRuler()
	require.NoError(t, r.Before("beta", "inserted", fn(4)))
	assert.Equal(t, []string{"alpha", "inserted", "beta", "gamma"}, r.Names())
	assert.Equal(t, []int{1, 4, 2, 3}, ids(r.GetRules(DefaultChain)))
}

func TestRuler_After(t *testing.T) {
	r := newTestRuler()
	require.NoError(t, r.After("beta", "inserted", fn(4)))
	assert.Equal(t, []string{"alpha", "beta", "inserted", "gamma"}, r.Names())
	assert.Equal(t, []int{1, 2, 4, 3}, ids(r.GetRules(DefaultChain)))
}

func TestRuler_After_LastRule(t *testing.T) {
	r := newTestRuler()
	require.NoError(t, r.After("gamma", "inserted", fn(4)))
	assert.Equal(t, []string{"alpha", "beta", "gamma", "inserted"}, r.Names())
}

func TestRuler_InsertAnchorMissing(t *testing.T) {
	r := newTestRuler()
	assert.ErrorIs(t, r.Before("missing", "x", fn(9)), ErrRuleNotFound)
	assert.ErrorIs(t, r.After("missing", "x", fn(9)), ErrRuleNotFound)
}

func TestRuler_At(t *testing.T) {
	r := newTestRuler()
	require.NoError(t, r.At("beta", fn(9)))
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, r.Names())
	assert.Equal(t, []int{1, 9, 3}, ids(r.GetRules(DefaultChain)))
}

func TestRuler_At_NotFound(t *testing.T) {
	r := newTestRuler()
	assert.ErrorIs(t, r.At("missing", fn(9)), ErrRuleNotFound)
}

func TestRuler_DisableEnable(t *testing.T) {
	r := newTestRuler()

	found, err := r.Disable([]string{"beta"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, found)
	assert.Equal(t, []int{1, 3}, ids(r.GetRules(DefaultChain)))
	assert.Equal(t, []string{"alpha", "gamma"}, r.ActiveNames())

	// Re-enabling restores the original position.
	_, err = r.Enable([]string{"beta"}, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(r.GetRules(DefaultChain)))
}

func TestRuler_EnableMissing(t *testing.T) {
	r := newTestRuler()

	_, err := r.Enable([]string{"missing"}, false)
	assert.ErrorIs(t, err, ErrRuleNotFound)

	found, err := r.Enable([]string{"missing"}, true)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRuler_EnableOnly(t *testing.T) {
	r := New[ruleFn]()
	r.Push("a", fn(1))
	r.Push("b", fn(2))
	r.Push("c", fn(3))
	r.Push("d", fn(4))

	require.NoError(t, r.EnableOnly([]string{"a", "c"}, false))
	assert.Equal(t, []string{"a", "c"}, r.ActiveNames())
	assert.Equal(t, []int{1, 3}, ids(r.GetRules(DefaultChain)))
}

func TestRuler_Chains(t *testing.T) {
	r := New[ruleFn]()
	r.Push("a", fn(1))
	r.Push("b", fn(2), "extra")
	r.Push("c", fn(3), "extra", "other")

	// The default chain includes everything; named chains require
	// explicit membership.
	assert.Equal(t, []int{1, 2, 3}, ids(r.GetRules(DefaultChain)))
	assert.Equal(t, []int{2, 3}, ids(r.GetRules("extra")))
	assert.Equal(t, []int{3}, ids(r.GetRules("other")))
}

func TestRuler_GetRules_UnknownChain(t *testing.T) {
	r := newTestRuler()
	got := r.GetRules("nope")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRuler_GetRules_StableBetweenMutations(t *testing.T) {
	r := newTestRuler()

	first := r.GetRules(DefaultChain)
	second := r.GetRules(DefaultChain)
	assert.Equal(t, first, second)

	_, err := r.Disable([]string{"alpha"}, false)
	require.NoError(t, err)
	assert.NotEqual(t, ids(first), ids(r.GetRules(DefaultChain)))
}

func TestRuler_DisabledRuleDropsChain(t *testing.T) {
	r := New[ruleFn]()
	r.Push("a", fn(1), "extra")

	_, err := r.Disable([]string{"a"}, false)
	require.NoError(t, err)

	// The chain name itself disappears with its only member.
	assert.Empty(t, r.GetRules("extra"))
	assert.Empty(t, r.GetRules(DefaultChain))
}

func TestRuler_DuplicateNames_FirstMatchWins(t *testing.T) {
	r := New[ruleFn]()
	r.Push("dup", fn(1))
	r.Push("dup", fn(2))

	require.NoError(t, r.At("dup", fn(9)))
	assert.Equal(t, []int{9, 2}, ids(r.GetRules(DefaultChain)))

	_, err := r.Disable([]string{"dup"}, false)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(r.GetRules(DefaultChain)))
}

func TestRuler_Rules(t *testing.T) {
	r := New[ruleFn]()
	r.Push("a", fn(1), "extra")
	r.Push("b", fn(2))
	_, err := r.Disable([]string{"b"}, false)
	require.NoError(t, err)

	infos := r.Rules()
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].Name)
	assert.True(t, infos[0].Enabled)
	assert.Equal(t, []string{"extra"}, infos[0].Chains)
	assert.Equal(t, "b", infos[1].Name)
	assert.False(t, infos[1].Enabled)
}
