package equality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alethecheck/internal/term"
)

func TestFindChain_DirectChain(t *testing.T) {
	pool := term.NewPool()
	a, b, c := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c")

	pairs := []EqPair{{A: a, B: b}, {A: b, B: c}}
	assert.True(t, FindChain(a, c, pairs))
}

func TestFindChain_FlipsOutOfOrientationPair(t *testing.T) {
	pool := term.NewPool()
	a, b, c := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "c")

	pairs := []EqPair{{A: b, B: a}, {A: b, B: c}}
	ok := FindChain(a, c, pairs)
	assert.True(t, ok)
	assert.True(t, pairs[0].Flipped, "the (b,a) pair must be flipped to (a,b) to start the chain")
}

func TestFindChain_StopsEarlyLeavingRemainderUntouched(t *testing.T) {
	pool := term.NewPool()
	a, b, x, y := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "x"), intVar(pool, "y")

	pairs := []EqPair{{A: a, B: b}, {A: x, B: y}}
	ok := FindChain(a, b, pairs)
	assert.True(t, ok)
	assert.Equal(t, x, pairs[1].A, "the unused pair must keep its original orientation")
}

func TestFindChain_NoMatchFails(t *testing.T) {
	pool := term.NewPool()
	a, b, x, y := intVar(pool, "a"), intVar(pool, "b"), intVar(pool, "x"), intVar(pool, "y")

	pairs := []EqPair{{A: x, B: y}}
	assert.False(t, FindChain(a, b, pairs))
}
