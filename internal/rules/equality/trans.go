package equality

import (
	"alethecheck/internal/check"
	"alethecheck/internal/errors"
	"alethecheck/internal/term"
)

// CheckTrans implements the `trans` rule: given premises (t0 = t1),
// (t1 = t2), ..., (t(n-1) = tn) in any order and orientation, concludes the
// unit clause (t0 = tn).
func CheckTrans(a *check.RuleArgs) *errors.CheckError {
	if err := check.AssertClauseLen(a.Conclusion, term.ExactRange(1)); err != nil {
		return err
	}
	if err := check.AssertNumPremises(a.Premises, term.AtLeast(1)); err != nil {
		return err
	}

	concLHS, concRHS, ok := asEquality(a.Conclusion[0])
	if !ok {
		return errors.ExpectedToBe(literalShape("(= _ _)"), a.Conclusion[0])
	}

	pairs := make([]EqPair, 0, len(a.Premises))
	for _, p := range a.Premises {
		pt, perr := check.GetPremiseTerm(p)
		if perr != nil {
			return perr
		}
		lhs, rhs, ok := asEquality(pt)
		if !ok {
			return errors.ExpectedToBe(literalShape("(= _ _)"), pt)
		}
		pairs = append(pairs, EqPair{A: lhs, B: rhs})
	}

	if !FindChain(concLHS, concRHS, pairs) {
		return errors.BrokenTransitivityChain(concLHS, concRHS)
	}
	return nil
}

// CheckEqTransitive implements the `eq_transitive` rule: a premise-less,
// tautological clause of the form
//
//	(not (= t0 t1)) (not (= t1 t2)) ... (not (= t(n-1) tn)) (= t0 tn)
//
// valid exactly when the trailing positive equality is reachable from the
// leading negated equalities via the same chain-orientation algorithm used
// by trans.
func CheckEqTransitive(a *check.RuleArgs) *errors.CheckError {
	if err := check.AssertClauseLen(a.Conclusion, term.AtLeast(3)); err != nil {
		return err
	}

	n := len(a.Conclusion)
	target := a.Conclusion[n-1]
	tgtLHS, tgtRHS, ok := asEquality(target)
	if !ok {
		return errors.ExpectedToBe(literalShape("(= _ _)"), target)
	}

	pairs := make([]EqPair, 0, n-1)
	for _, lit := range a.Conclusion[:n-1] {
		inner, ok := asNot(lit)
		if !ok {
			return errors.ExpectedToBe(literalShape("(not (= _ _))"), lit)
		}
		lhs, rhs, ok := asEquality(inner)
		if !ok {
			return errors.ExpectedToBe(literalShape("(not (= _ _))"), lit)
		}
		pairs = append(pairs, EqPair{A: lhs, B: rhs})
	}

	if !FindChain(tgtLHS, tgtRHS, pairs) {
		return errors.BrokenTransitivityChain(tgtLHS, tgtRHS)
	}
	return nil
}
