// Package equality implements the equality-chain engine (spec.md §4.5):
// the shared find_chain orientation algorithm and the eq_transitive/trans
// checkers and elaborator built on it.
package equality

import "alethecheck/internal/term"

// EqPair is one link offered to FindChain: an equality between A and B, in
// the orientation it appeared in the premise or clause literal it was
// extracted from. Flipped records whether FindChain reoriented it (B, A
// swapped into A, B) to fit the chain; an elaborator uses this to know
// where a synthesized symm step is required.
type EqPair struct {
	A, B    *term.Term
	Flipped bool
}

// FindChain orients pairs, in place, into a chain running from start to
// target: repeatedly find a pair whose A (or, reoriented, B) side matches
// the current target, swap it to the front of the remaining slice, and
// recurse with the new target taken from that pair's other side.
//
// Success is reported the moment start == target, even with pairs left
// over in the slice; those are left unconsumed and keep their original
// orientation, although the swaps made while building the chain may have
// moved them within the tail. This mirrors the reference checker's
// behavior exactly: extra premises are accepted, not rejected.
func FindChain(start, target *term.Term, pairs []EqPair) bool {
	if start == target {
		return true
	}
	for i := range pairs {
		switch {
		case pairs[i].A == start:
			pairs[0], pairs[i] = pairs[i], pairs[0]
			return FindChain(pairs[0].B, target, pairs[1:])
		case pairs[i].B == start:
			pairs[i].A, pairs[i].B = pairs[i].B, pairs[i].A
			pairs[i].Flipped = true
			pairs[0], pairs[i] = pairs[i], pairs[0]
			return FindChain(pairs[0].B, target, pairs[1:])
		}
	}
	return false
}

func asEquality(t *term.Term) (lhs, rhs *term.Term, ok bool) {
	if t.Kind() != term.KindOp || t.Op() != term.OpEquals || len(t.Args()) != 2 {
		return nil, nil, false
	}
	return t.Args()[0], t.Args()[1], true
}

func asNot(t *term.Term) (inner *term.Term, ok bool) {
	if t.Kind() != term.KindOp || t.Op() != term.OpNot || len(t.Args()) != 1 {
		return nil, false
	}
	return t.Args()[0], true
}

// literalShape is a fmt.Stringer used purely to describe an expected
// literal shape in an error message, without depending on a concrete term.
type literalShape string

func (l literalShape) String() string { return string(l) }
