package equality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alethecheck/internal/check"
	"alethecheck/internal/proof"
	"alethecheck/internal/term"
)

func intSort(p *term.Pool) *term.Term { return p.Add(term.NewSortTerm(term.IntSort())) }

func intVar(p *term.Pool, name string) *term.Term { return p.Add(term.NewVar(name, intSort(p))) }

func eq(p *term.Pool, a, b *term.Term) *term.Term {
	return p.Add(term.NewOp(term.OpEquals, a, b))
}

func notT(p *term.Pool, t *term.Term) *term.Term {
	return p.Add(term.NewOp(term.OpNot, t))
}

func newRuleArgs(conclusion proof.Clause, premises []proof.Premise, pool *term.Pool) *check.RuleArgs {
	return &check.RuleArgs{
		Conclusion: conclusion,
		Premises:   premises,
		Pool:       pool,
		Context:    check.NewContextStack(),
		DeepEqTime: &check.DeepEqTimer{},
	}
}

func TestCheckTrans_SimpleChain(t *testing.T) {
	pool := term.NewPool()
	a, b, c := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c")

	premises := []proof.Premise{
		{ID: "p1", Clause: proof.Clause{eq(pool, a, b)}},
		{ID: "p2", Clause: proof.Clause{eq(pool, b, c)}},
	}
	conclusion := proof.Clause{eq(pool, a, c)}

	err := CheckTrans(newRuleArgs(conclusion, premises, pool))
	assert.Nil(t, err)
}

func TestCheckTrans_ReorderedAndFlippedPremises(t *testing.T) {
	pool := term.NewPool()
	a, b, c, d := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c"), intVar(pool, "d")

	// Premises arrive out of order, and p3 is given as (d, c) instead of (c, d).
	premises := []proof.Premise{
		{ID: "p3", Clause: proof.Clause{eq(pool, d, c)}},
		{ID: "p1", Clause: proof.Clause{eq(pool, a, b)}},
		{ID: "p2", Clause: proof.Clause{eq(pool, b, c)}},
	}
	conclusion := proof.Clause{eq(pool, a, d)}

	err := CheckTrans(newRuleArgs(conclusion, premises, pool))
	assert.Nil(t, err)
}

func TestCheckTrans_ExtraUnconsumedPremiseIsAccepted(t *testing.T) {
	pool := term.NewPool()
	a, b, c, x, y := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c"), intVar(pool, "x"), intVar(pool, "y")

	premises := []proof.Premise{
		{ID: "p1", Clause: proof.Clause{eq(pool, a, b)}},
		{ID: "p2", Clause: proof.Clause{eq(pool, b, c)}},
		{ID: "unused", Clause: proof.Clause{eq(pool, x, y)}},
	}
	conclusion := proof.Clause{eq(pool, a, c)}

	err := CheckTrans(newRuleArgs(conclusion, premises, pool))
	assert.Nil(t, err, "a chain that reaches its target early must succeed even with premises left over")
}

func TestCheckTrans_BrokenChainReportsError(t *testing.T) {
	pool := term.NewPool()
	a, b, x, y := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "x"), intVar(pool, "y")

	premises := []proof.Premise{
		{ID: "p1", Clause: proof.Clause{eq(pool, a, b)}},
	}
	conclusion := proof.Clause{eq(pool, x, y)}

	err := CheckTrans(newRuleArgs(conclusion, premises, pool))
	require.NotNil(t, err)
	assert.Equal(t, "C0101", err.Code)
}

func TestCheckEqTransitive_TautologicalClause(t *testing.T) {
	pool := term.NewPool()
	a, b, c := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c")

	conclusion := proof.Clause{
		notT(pool, eq(pool, a, b)),
		notT(pool, eq(pool, b, c)),
		eq(pool, a, c),
	}

	err := CheckEqTransitive(newRuleArgs(conclusion, nil, pool))
	assert.Nil(t, err)
}

func TestCheckEqTransitive_RejectsNonEqualityLiteral(t *testing.T) {
	pool := term.NewPool()
	a, b, c := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c")

	conclusion := proof.Clause{notT(pool, eq(pool, a, b)), a, eq(pool, a, c)}

	err := CheckEqTransitive(newRuleArgs(conclusion, nil, pool))
	require.NotNil(t, err)
	assert.Equal(t, "C0006", err.Code)
}

func TestCheckEqTransitive_RejectsShortClause(t *testing.T) {
	pool := term.NewPool()
	a, b := intVar(pool, "a"), intVar(pool, "b")

	conclusion := proof.Clause{notT(pool, eq(pool, a, b)), eq(pool, a, b)}

	err := CheckEqTransitive(newRuleArgs(conclusion, nil, pool))
	require.NotNil(t, err)
	assert.Equal(t, "C0002", err.Code)
}
