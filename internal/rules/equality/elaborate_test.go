package equality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alethecheck/internal/proof"
	"alethecheck/internal/term"
)

func TestElaborateTrans_NoFlipsLeavesStepUnchanged(t *testing.T) {
	pool := term.NewPool()
	a, b, c := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c")

	premises := []proof.Premise{
		{ID: "p1", Clause: proof.Clause{eq(pool, a, b)}, Index: proof.Index{Depth: 0, Offset: 0}},
		{ID: "p2", Clause: proof.Clause{eq(pool, b, c)}, Index: proof.Index{Depth: 0, Offset: 1}},
	}
	conclusion := proof.Clause{eq(pool, a, c)}

	replacement, err := ElaborateTrans(newRuleArgs(conclusion, premises, pool), "t3")
	require.Nil(t, err)
	assert.Nil(t, replacement, "a chain with no flipped premises needs no reconstruction")
}

func TestElaborateTrans_FlippedPremiseGetsSynthesizedSymmStep(t *testing.T) {
	pool := term.NewPool()
	a, b, c := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c")

	// p2 is given as (c, b) rather than (b, c): FindChain must flip it.
	premises := []proof.Premise{
		{ID: "p1", Clause: proof.Clause{eq(pool, a, b)}, Index: proof.Index{Depth: 0, Offset: 0}},
		{ID: "p2", Clause: proof.Clause{eq(pool, c, b)}, Index: proof.Index{Depth: 0, Offset: 1}},
	}
	conclusion := proof.Clause{eq(pool, a, c)}

	replacement, err := ElaborateTrans(newRuleArgs(conclusion, premises, pool), "t3")
	require.Nil(t, err)
	require.Len(t, replacement, 1)

	sub := replacement[0]
	require.True(t, sub.IsSubproof())
	inner := sub.Commands()
	require.Len(t, inner, 2)

	symmStep := inner[0]
	assert.Equal(t, "t3.t1", symmStep.ID())
	assert.Equal(t, "symm", symmStep.Rule())

	finalStep := inner[1]
	assert.Equal(t, "t3", finalStep.ID())
	assert.Equal(t, "trans", finalStep.Rule())
	assert.Equal(t, proof.Index{Depth: 1, Offset: 0}, finalStep.PremiseRefs()[1])
}
