package errors

import "fmt"

// Builder provides a fluent interface for attaching notes and help text to
// a CheckError, mirroring the teacher's semantic-error builder.
type Builder struct {
	err CheckError
}

func newBuilder(kind Kind, code, message string) *Builder {
	return &Builder{err: CheckError{Kind: kind, Code: code, Message: message}}
}

func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *Builder) WithHelp(help string) *Builder {
	b.err.HelpText = help
	return b
}

func (b *Builder) Build() *CheckError {
	err := b.err
	return &err
}

// Shared-assertion constructors (spec §4.2 / §6).

func WrongNumberOfPremises(want Range, got int) *CheckError {
	return newBuilder(KindWrongNumberOfPremises, CodeWrongNumberOfPremises,
		fmt.Sprintf("expected %s premises, got %d", rangeString(want), got)).Build()
}

func WrongLengthOfClause(want Range, got int) *CheckError {
	return newBuilder(KindWrongLengthOfClause, CodeWrongLengthOfClause,
		fmt.Sprintf("expected a clause of %s literals, got %d", rangeString(want), got)).Build()
}

func WrongNumberOfArgs(want Range, got int) *CheckError {
	return newBuilder(KindWrongNumberOfArgs, CodeWrongNumberOfArgs,
		fmt.Sprintf("expected %s arguments, got %d", rangeString(want), got)).Build()
}

func WrongNumberOfTermsInOp(op fmt.Stringer, want Range, got int) *CheckError {
	return newBuilder(KindWrongNumberOfTermsInOp, CodeWrongNumberOfTermsInOp,
		fmt.Sprintf("operator %s expects %s arguments, got %d", op, rangeString(want), got)).Build()
}

func ExpectedEqual(a, b fmt.Stringer) *CheckError {
	return newBuilder(KindExpectedEqual, CodeExpectedEqual,
		fmt.Sprintf("expected %s and %s to be equal", a, b)).Build()
}

func ExpectedToBe(expected, got fmt.Stringer) *CheckError {
	return newBuilder(KindExpectedToBe, CodeExpectedToBe,
		fmt.Sprintf("expected %s, got %s", expected, got)).Build()
}

func ExpectedBoolConstant(expected bool, got fmt.Stringer) *CheckError {
	return newBuilder(KindExpectedBoolConstant, CodeExpectedBoolConstant,
		fmt.Sprintf("expected boolean constant %t, got %s", expected, got)).Build()
}

func WrongLengthOfPremiseClause(premiseID string, want Range, got int) *CheckError {
	return newBuilder(KindWrongLengthOfPremiseClause, CodeWrongLengthOfPremiseClause,
		fmt.Sprintf("premise %q has a clause of length %d, expected %s", premiseID, got, rangeString(want))).Build()
}

// Equality-chain-engine constructors (spec §4.5).

func BrokenTransitivityChain(lhs, rhs fmt.Stringer) *CheckError {
	return newBuilder(KindBrokenTransitivityChain, CodeBrokenTransitivityChain,
		fmt.Sprintf("broken transitivity chain between %s and %s", lhs, rhs)).
		WithHelp("premises must chain from the first equality to the last without gaps").
		Build()
}

// Dispatcher-level constructors (spec §4.4, §6).

func UnknownRule(name string) *CheckError {
	return newBuilder(KindUnknownRule, CodeUnknownRule,
		fmt.Sprintf("no checker registered for rule %q", name)).Build()
}

func rangeString(r Range) string {
	if r.Max < 0 {
		return fmt.Sprintf("at least %d", r.Min)
	}
	if r.Min == r.Max {
		return fmt.Sprintf("exactly %d", r.Min)
	}
	return fmt.Sprintf("between %d and %d", r.Min, r.Max)
}
