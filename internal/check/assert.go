package check

import (
	"alethecheck/internal/errors"
	"alethecheck/internal/proof"
	"alethecheck/internal/term"
)

// Shared assertions (spec.md §4.2): tiny total functions that return a
// uniform error on mismatch. Every rule in the equality family, and any
// rule outside this core sharing the same checking contract, goes through
// these instead of rolling its own range checks.

func AssertClauseLen(clause proof.Clause, r term.Range) *errors.CheckError {
	if !r.Contains(clause.Len()) {
		return errors.WrongLengthOfClause(r, clause.Len())
	}
	return nil
}

func AssertNumPremises(premises []proof.Premise, r term.Range) *errors.CheckError {
	if !r.Contains(len(premises)) {
		return errors.WrongNumberOfPremises(r, len(premises))
	}
	return nil
}

func AssertNumArgs(args []proof.Arg, r term.Range) *errors.CheckError {
	if !r.Contains(len(args)) {
		return errors.WrongNumberOfArgs(r, len(args))
	}
	return nil
}

func AssertOperatorArity(op term.Operator, args []*term.Term, r term.Range) *errors.CheckError {
	if !r.Contains(len(args)) {
		return errors.WrongNumberOfTermsInOp(op, r, len(args))
	}
	return nil
}

// AssertEqualTerms checks pointer identity, the cheap equality available
// whenever both terms originate from the same pool.
func AssertEqualTerms(a, b *term.Term) *errors.CheckError {
	if a != b {
		return errors.ExpectedEqual(a, b)
	}
	return nil
}

// AssertIsExpected checks that got is identical to expected.
func AssertIsExpected(got, expected *term.Term) *errors.CheckError {
	if got != expected {
		return errors.ExpectedToBe(expected, got)
	}
	return nil
}

// AssertDeepEqual checks structural equality (not just pointer identity),
// for the rare case where compared terms do not originate from the same
// pool, accumulating the elapsed comparison time into timer.
func AssertDeepEqual(a, b *term.Term, timer *DeepEqTimer) *errors.CheckError {
	if !timer.Equal(a, b) {
		return errors.ExpectedEqual(a, b)
	}
	return nil
}

func AssertIsBoolConstant(got *term.Term, expected bool) *errors.CheckError {
	if !got.IsBoolConstant(expected) {
		return errors.ExpectedBoolConstant(expected, got)
	}
	return nil
}

// GetPremiseTerm returns the single term of a unit-clause premise, or a
// WrongLengthOfPremiseClause error naming the premise.
func GetPremiseTerm(p proof.Premise) (*term.Term, *errors.CheckError) {
	if !p.Clause.IsUnit() {
		return nil, errors.WrongLengthOfPremiseClause(p.ID, term.ExactRange(1), p.Clause.Len())
	}
	return p.Clause[0], nil
}
