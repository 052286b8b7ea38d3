package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDGenerator_ReturnsBaseWhenUnused(t *testing.T) {
	g := NewIDGenerator([]string{"t1", "t2"})
	assert.Equal(t, "t3.t1", g.Fresh("t3.t1"))
}

func TestIDGenerator_SuffixesOnCollision(t *testing.T) {
	g := NewIDGenerator([]string{"t3.t1"})
	got := g.Fresh("t3.t1")
	assert.NotEqual(t, "t3.t1", got)
	assert.Contains(t, got, "t3.t1.")
}

func TestIDGenerator_NeverRepeatsAcrossCalls(t *testing.T) {
	g := NewIDGenerator(nil)
	first := g.Fresh("x")
	second := g.Fresh("x")
	assert.NotEqual(t, first, second)
}
