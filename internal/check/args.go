package check

import (
	"alethecheck/internal/proof"
	"alethecheck/internal/term"
)

// IDSynth synthesizes a fresh step identifier derived from base,
// guaranteeing it does not collide with any id already used in the run.
// An elaborator that needs to invent more than the common "<step>.tN"
// shape (or that must avoid colliding with another elaboration's
// synthesized ids) goes through this instead of rolling its own naming
// scheme. internal/elaborate.IDGenerator implements it.
type IDSynth interface {
	Fresh(base string) string
}

// RuleArgs is the uniform argument bundle the dispatcher assembles for
// every rule predicate (spec.md §4.4).
type RuleArgs struct {
	// StepID is the identifier of the step being checked or elaborated.
	StepID string

	Conclusion proof.Clause
	Premises   []proof.Premise
	Args       []proof.Arg
	Pool       *term.Pool
	Context    *ContextStack

	// PreviousCommand is set only for subproof-closing rules: the
	// immediately prior command in that subproof, which may be
	// implicitly referenced without appearing in Premises.
	PreviousCommand *proof.Premise

	Discharge []*proof.Command

	// DeepEqTime is the driver's single cumulative deep-equality timer,
	// shared across every step of the run so its Total keeps accumulating
	// instead of resetting per step.
	DeepEqTime *DeepEqTimer

	// IDs synthesizes fresh step identifiers for an elaborator that
	// rewrites this step. Nil when the driver is only checking, never
	// elaborating.
	IDs IDSynth
}
