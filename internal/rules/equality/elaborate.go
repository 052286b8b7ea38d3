package equality

import (
	"fmt"

	"alethecheck/internal/check"
	"alethecheck/internal/errors"
	"alethecheck/internal/proof"
	"alethecheck/internal/term"
)

// link pairs a chain-orientation candidate with the premise it was
// extracted from, so reordering the chain during discovery reorders both
// together.
type link struct {
	pair    EqPair
	premise proof.Premise
}

func orientLinks(start, target *term.Term, links []link) int {
	if start == target {
		return 0
	}
	for i := range links {
		switch {
		case links[i].pair.A == start:
			links[0], links[i] = links[i], links[0]
			rest := orientLinks(links[0].pair.B, target, links[1:])
			if rest < 0 {
				return -1
			}
			return rest + 1
		case links[i].pair.B == start:
			links[i].pair.A, links[i].pair.B = links[i].pair.B, links[i].pair.A
			links[i].pair.Flipped = true
			links[0], links[i] = links[i], links[0]
			rest := orientLinks(links[0].pair.B, target, links[1:])
			if rest < 0 {
				return -1
			}
			return rest + 1
		}
	}
	return -1
}

// ElaborateTrans reconstructs a `trans` step so every premise it consumes
// is already oriented left-to-right, synthesizing a `symm` step for each
// premise the chain-orientation search had to flip. A chain needing no
// flips is left untouched: the driver keeps the original step when
// ElaborateTrans returns a nil command slice (spec.md §5).
//
// stepID is the identifier of the step being elaborated; synthesized symm
// steps are given fresh ids of the form "<stepID>.t<k>", passed through
// a.IDs.Fresh when a.IDs is set (which appends a suffix on a collision).
func ElaborateTrans(a *check.RuleArgs, stepID string) ([]*proof.Command, *errors.CheckError) {
	if err := CheckTrans(a); err != nil {
		return nil, err
	}

	concLHS, concRHS, _ := asEquality(a.Conclusion[0])

	links := make([]link, len(a.Premises))
	for i, p := range a.Premises {
		pt, _ := check.GetPremiseTerm(p)
		lhs, rhs, _ := asEquality(pt)
		links[i] = link{pair: EqPair{A: lhs, B: rhs}, premise: p}
	}

	consumed := orientLinks(concLHS, concRHS, links)
	if consumed < 0 {
		return nil, errors.BrokenTransitivityChain(concLHS, concRHS)
	}

	anyFlipped := false
	for _, l := range links[:consumed] {
		if l.pair.Flipped {
			anyFlipped = true
			break
		}
	}
	if !anyFlipped {
		return nil, nil
	}

	var inner []*proof.Command
	newPremises := make([]proof.Index, 0, consumed)
	for i := 0; i < consumed; i++ {
		l := links[i]
		if !l.pair.Flipped {
			newPremises = append(newPremises, l.premise.Index)
			continue
		}
		symmID := fmt.Sprintf("%s.t%d", stepID, len(inner)+1)
		if a.IDs != nil {
			symmID = a.IDs.Fresh(symmID)
		}
		symmClause := proof.Clause{a.Pool.Add(term.NewOp(term.OpEquals, l.pair.A, l.pair.B))}
		symmStep := proof.NewStep(symmID, symmClause, "symm",
			[]proof.Index{l.premise.Index}, nil, nil)
		inner = append(inner, symmStep)
		newPremises = append(newPremises, proof.Index{Depth: 1, Offset: len(inner) - 1})
	}

	finalClause := proof.Clause{a.Pool.Add(term.NewOp(term.OpEquals, concLHS, concRHS))}
	final := proof.NewStep(stepID, finalClause, "trans", newPremises, nil, nil)
	inner = append(inner, final)

	return []*proof.Command{proof.NewSubproof(inner, nil, nil)}, nil
}
