package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alethecheck/internal/proof"
	"alethecheck/internal/term"
)

func boolVar(p *term.Pool, name string) *term.Term {
	sort := p.Add(term.NewSortTerm(term.BoolSort()))
	return p.Add(term.NewVar(name, sort))
}

func TestIterator_FlatProofCoversEveryCommandOnce(t *testing.T) {
	pool := term.NewPool()
	a := boolVar(pool, "a")

	root := []*proof.Command{
		proof.NewAssumption("h1", a),
		proof.NewStep("t2", proof.Clause{a}, "trans", []proof.Index{{Depth: 0, Offset: 0}}, nil, nil),
	}
	coords := proof.BuildSchedule(root)

	it := New(root, coords)
	seen := 0
	for {
		cmd := it.Next()
		if cmd == nil {
			break
		}
		seen++
	}
	assert.Equal(t, 2, seen)
}

func TestIterator_SubproofFramingAndEndStep(t *testing.T) {
	pool := term.NewPool()
	a := boolVar(pool, "a")
	b := boolVar(pool, "b")

	inner1 := proof.NewAssumption("h1", a)
	inner2 := proof.NewStep("t1.1", proof.Clause{b}, "symm", nil, nil, nil)
	subproof := proof.NewSubproof([]*proof.Command{inner1, inner2}, nil, nil)

	after := proof.NewStep("t2", proof.Clause{b}, "trans", []proof.Index{{Depth: 1, Offset: 1}}, nil, nil)

	root := []*proof.Command{subproof, after}
	coords := proof.BuildSchedule(root)

	it := New(root, coords)

	first := it.Next()
	require.NotNil(t, first)
	assert.Equal(t, 1, it.Depth())
	assert.True(t, it.IsInSubproof(), "entering a subproof pushes its frame immediately")

	hyp := it.Next()
	require.NotNil(t, hyp)
	assert.Equal(t, "h1", hyp.ID())

	second := it.Next()
	require.NotNil(t, second)
	assert.Equal(t, "t1.1", second.ID())
	assert.True(t, it.IsEndStep(), "t1.1 is the last command in the subproof")

	// Premise resolution happens while the referenced frame is still open.
	premise := it.GetPremise(proof.Index{Depth: 1, Offset: 1})
	assert.Equal(t, "t1.1", premise.ID())

	closing := it.Next()
	require.NotNil(t, closing)
	assert.Equal(t, proof.KindClosing, closing.Kind())

	last := it.Next()
	require.NotNil(t, last)
	assert.Equal(t, "t2", last.ID())
	assert.False(t, it.IsInSubproof())

	assert.Nil(t, it.Next())
}
