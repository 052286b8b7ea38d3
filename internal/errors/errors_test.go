package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alethecheck/internal/term"
)

type stringerTerm string

func (s stringerTerm) String() string { return string(s) }

func TestBrokenTransitivityChain(t *testing.T) {
	err := BrokenTransitivityChain(stringerTerm("a"), stringerTerm("d"))

	assert.Equal(t, KindBrokenTransitivityChain, err.Kind)
	assert.Equal(t, CodeBrokenTransitivityChain, err.Code)
	assert.Contains(t, err.Message, "a")
	assert.Contains(t, err.Message, "d")
	assert.NotEmpty(t, err.HelpText)
}

func TestWithStepAugmentsErrorIdentity(t *testing.T) {
	err := WrongNumberOfPremises(term.AtLeast(1), 0)
	err = err.WithStep("trans", "t1")

	assert.Equal(t, "trans", err.Rule)
	assert.Equal(t, "t1", err.Step)
	assert.Contains(t, err.Error(), "t1")
	assert.Contains(t, err.Error(), "trans")
}

func TestReporterFormatIncludesStepAndRule(t *testing.T) {
	err := BrokenTransitivityChain(stringerTerm("a"), stringerTerm("d")).WithStep("trans", "t1")
	out := NewReporter().Format(err)

	assert.True(t, strings.Contains(out, "t1"))
	assert.True(t, strings.Contains(out, "trans"))
	assert.True(t, strings.Contains(out, CodeBrokenTransitivityChain))
}
