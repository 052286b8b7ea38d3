package elaborate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alethecheck/internal/check"
	"alethecheck/internal/elaborate"
	"alethecheck/internal/proof"
	"alethecheck/internal/rules/equality"
	"alethecheck/internal/term"
)

func TestElaborator_Run_RoutesSynthesizedIDsThroughIDGenerator(t *testing.T) {
	pool := term.NewPool()
	intSort := pool.Add(term.NewSortTerm(term.IntSort()))
	a := pool.Add(term.NewVar("a", intSort))
	b := pool.Add(term.NewVar("b", intSort))
	c := pool.Add(term.NewVar("c", intSort))

	eqAB := pool.Add(term.NewOp(term.OpEquals, a, b))
	eqCB := pool.Add(term.NewOp(term.OpEquals, c, b))
	eqAC := pool.Add(term.NewOp(term.OpEquals, a, c))

	commands := []*proof.Command{
		proof.NewAssumption("h1", eqAB),
		proof.NewAssumption("h2", eqCB),
		proof.NewStep("t1", proof.Clause{eqAC}, "trans",
			[]proof.Index{{Depth: 0, Offset: 0}, {Depth: 0, Offset: 1}}, nil, nil),
	}

	dispatcher := check.NewDispatcher()
	equality.Register(dispatcher)
	driver := check.NewDriver(pool, dispatcher, check.Config{})

	out, gen, cerr := elaborate.NewElaborator(driver).Run(commands)
	require.Nil(t, cerr)
	require.NotNil(t, gen)

	require.Len(t, out, 3)
	sub := out[2]
	require.True(t, sub.IsSubproof())
	inner := sub.Commands()
	require.Len(t, inner, 2)
	assert.Equal(t, "t1.t1", inner[0].ID())

	// The generator returned was seeded before elaboration and has already
	// observed the synthesized "t1.t1" id; asking it for the same base again
	// must not hand back a colliding id.
	second := gen.Fresh("t1.t1")
	assert.NotEqual(t, "t1.t1", second)
}
