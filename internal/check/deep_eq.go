package check

import (
	"time"

	"alethecheck/internal/term"
)

// DeepEqTimer wraps a cumulative time.Duration accumulator shared across a
// checking run. Structural deep-equality is only needed when compared
// terms might not originate from the same pool (pointer identity then
// cannot be relied on); every other comparison in this core uses the
// cheaper pointer check in RuleArgs.Pool-interned terms directly.
type DeepEqTimer struct {
	Total time.Duration
}

// Equal performs a structural comparison of a and b, accumulating the
// elapsed wall-clock time into Total.
func (d *DeepEqTimer) Equal(a, b *term.Term) bool {
	start := time.Now()
	defer func() { d.Total += time.Since(start) }()
	return deepEqual(a, b)
}

func deepEqual(a, b *term.Term) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case term.KindInt:
		return a.IntValue().Cmp(b.IntValue()) == 0
	case term.KindReal:
		return a.RealValue().Cmp(b.RealValue()) == 0
	case term.KindString:
		return a.StringValue() == b.StringValue()
	case term.KindVar:
		return a.VarName() == b.VarName() && deepEqual(a.VarSort(), b.VarSort())
	case term.KindApp:
		if !deepEqual(a.AppHead(), b.AppHead()) {
			return false
		}
		return deepEqualSlices(a.Args(), b.Args())
	case term.KindOp:
		if a.Op() != b.Op() {
			return false
		}
		return deepEqualSlices(a.Args(), b.Args())
	case term.KindSort:
		return a.AsSort().Equal(b.AsSort())
	case term.KindQuantifier:
		if a.QuantKind() != b.QuantKind() || len(a.Bound()) != len(b.Bound()) {
			return false
		}
		for i, bnd := range a.Bound() {
			other := b.Bound()[i]
			if bnd.Name != other.Name || !deepEqual(bnd.Sort, other.Sort) {
				return false
			}
		}
		return deepEqual(a.Body(), b.Body())
	case term.KindChoice:
		if a.ChoiceVar().Name != b.ChoiceVar().Name || !deepEqual(a.ChoiceVar().Sort, b.ChoiceVar().Sort) {
			return false
		}
		return deepEqual(a.Body(), b.Body())
	case term.KindLet:
		if len(a.LetBindings()) != len(b.LetBindings()) {
			return false
		}
		for i, bd := range a.LetBindings() {
			other := b.LetBindings()[i]
			if bd.Name != other.Name || !deepEqual(bd.Value, other.Value) {
				return false
			}
		}
		return deepEqual(a.Body(), b.Body())
	case term.KindLambda:
		if len(a.LambdaParams()) != len(b.LambdaParams()) {
			return false
		}
		for i, p := range a.LambdaParams() {
			other := b.LambdaParams()[i]
			if p.Name != other.Name || !deepEqual(p.Sort, other.Sort) {
				return false
			}
		}
		return deepEqual(a.Body(), b.Body())
	default:
		return false
	}
}

func deepEqualSlices(a, b []*term.Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !deepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
