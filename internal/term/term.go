package term

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind is the closed set of term shapes described in the data model.
type Kind int

const (
	KindInt Kind = iota
	KindReal
	KindString
	KindVar
	KindApp
	KindOp
	KindSort
	KindQuantifier
	KindChoice
	KindLet
	KindLambda
)

// QuantifierKind distinguishes universal from existential quantification.
type QuantifierKind int

const (
	Forall QuantifierKind = iota
	Exists
)

// Binder is a bound-variable declaration: a name paired with its declared
// sort term (a *Term of kind Sort).
type Binder struct {
	Name string
	Sort *Term
}

// Binding is a let-binding: a bound name paired with the value term it is
// bound to (the bound variable's sort is inferred from the value).
type Binding struct {
	Name  string
	Value *Term
}

// Term is a node in the hash-consed term representation. Every Term handed
// out by a Pool is a shared, immutable reference interned in that pool;
// reference identity implies value equality for terms from the same pool.
// Fields are unexported so construction always goes through the
// constructors below and interning through Pool.Add.
type Term struct {
	kind Kind
	id   uint64 // assigned at interning time; zero means not yet interned

	intVal *big.Int
	realVal *big.Rat
	strVal  string

	varName string
	varSort *Term // *Term of kind Sort; set for KindVar

	head *Term   // KindApp
	args []*Term // KindApp, KindOp

	op Operator // KindOp

	sortValue Sort // KindSort

	quantKind QuantifierKind
	bound     []Binder
	body      *Term // KindQuantifier, KindLet, KindLambda

	choiceVar Binder

	letBindings []Binding

	lambdaParams []Binder
}

func (t *Term) Kind() Kind { return t.kind }
func (t *Term) ID() uint64 { return t.id }

func (t *Term) IntValue() *big.Int   { return t.intVal }
func (t *Term) RealValue() *big.Rat  { return t.realVal }
func (t *Term) StringValue() string  { return t.strVal }
func (t *Term) VarName() string      { return t.varName }
func (t *Term) VarSort() *Term       { return t.varSort }
func (t *Term) AppHead() *Term       { return t.head }
func (t *Term) Args() []*Term        { return t.args }
func (t *Term) Op() Operator         { return t.op }
func (t *Term) QuantKind() QuantifierKind { return t.quantKind }
func (t *Term) Bound() []Binder      { return t.bound }
func (t *Term) Body() *Term          { return t.body }
func (t *Term) ChoiceVar() Binder    { return t.choiceVar }
func (t *Term) LetBindings() []Binding { return t.letBindings }
func (t *Term) LambdaParams() []Binder { return t.lambdaParams }

// AsSort returns the Sort value carried by a KindSort term. It panics if t
// is not a sort term; callers must only invoke it on terms known to carry
// kind Sort, mirroring the panic-on-programmer-error contract used
// throughout the pool.
func (t *Term) AsSort() Sort {
	if t.kind != KindSort {
		panic(fmt.Sprintf("term: AsSort called on non-sort term (kind %d)", t.kind))
	}
	return t.sortValue
}

// IsBoolConstant reports whether t is the preinterned boolean literal
// matching value.
func (t *Term) IsBoolConstant(value bool) bool {
	if t.kind != KindVar {
		return false
	}
	name := "false"
	if value {
		name = "true"
	}
	return t.varName == name && t.varSort != nil && t.varSort.kind == KindSort && t.varSort.sortValue.kind == SortBool
}

// --- Constructors. These build candidate (un-interned) terms; callers must
// pass Pool.Add to obtain the canonical, interned reference. ---

func NewInt(v *big.Int) *Term { return &Term{kind: KindInt, intVal: v} }

func NewReal(v *big.Rat) *Term { return &Term{kind: KindReal, realVal: v} }

func NewStringLit(s string) *Term { return &Term{kind: KindString, strVal: s} }

// NewVar builds a variable or constant terminal. sort must already be an
// interned *Term of kind Sort.
func NewVar(name string, sort *Term) *Term {
	return &Term{kind: KindVar, varName: name, varSort: sort}
}

// NewApp builds a function application: head applied to args. head and args
// must already be interned.
func NewApp(head *Term, args ...*Term) *Term {
	return &Term{kind: KindApp, head: head, args: args}
}

// NewOp builds an operator application. args must already be interned.
func NewOp(op Operator, args ...*Term) *Term {
	return &Term{kind: KindOp, op: op, args: args}
}

// NewSortTerm wraps a Sort value as a term, so it can be interned and
// referenced like any other term.
func NewSortTerm(s Sort) *Term { return &Term{kind: KindSort, sortValue: s} }

// NewQuantifier builds a quantified formula. bound variable sorts and body
// must already be interned.
func NewQuantifier(kind QuantifierKind, bound []Binder, body *Term) *Term {
	return &Term{kind: KindQuantifier, quantKind: kind, bound: bound, body: body}
}

func NewChoice(v Binder, body *Term) *Term {
	return &Term{kind: KindChoice, choiceVar: v, body: body}
}

func NewLet(bindings []Binding, body *Term) *Term {
	return &Term{kind: KindLet, letBindings: bindings, body: body}
}

func NewLambda(params []Binder, body *Term) *Term {
	return &Term{kind: KindLambda, lambdaParams: params, body: body}
}

// key returns the canonical structural key used by the pool to decide
// whether an equal term has already been interned. It assumes all subterms
// referenced by t have already been interned (have non-zero ids), which is
// guaranteed by building terms bottom-up through the constructors above.
func (t *Term) key() string {
	var b strings.Builder
	switch t.kind {
	case KindInt:
		fmt.Fprintf(&b, "i:%s", t.intVal.String())
	case KindReal:
		fmt.Fprintf(&b, "r:%s", t.realVal.RatString())
	case KindString:
		fmt.Fprintf(&b, "s:%q", t.strVal)
	case KindVar:
		fmt.Fprintf(&b, "v:%s:%d", t.varName, t.varSort.id)
	case KindApp:
		fmt.Fprintf(&b, "a:%d:", t.head.id)
		writeIDs(&b, t.args)
	case KindOp:
		fmt.Fprintf(&b, "o:%d:", int(t.op))
		writeIDs(&b, t.args)
	case KindSort:
		fmt.Fprintf(&b, "S:%d", int(t.sortValue.kind))
		switch t.sortValue.kind {
		case SortArray:
			fmt.Fprintf(&b, ":%d:%d", t.sortValue.arrayKey.id, t.sortValue.arrayValue.id)
		case SortFunction:
			b.WriteString(":")
			writeIDs(&b, t.sortValue.fnSorts)
		}
	case KindQuantifier:
		fmt.Fprintf(&b, "q:%d:", int(t.quantKind))
		for _, bnd := range t.bound {
			fmt.Fprintf(&b, "%s/%d,", bnd.Name, bnd.Sort.id)
		}
		fmt.Fprintf(&b, ":%d", t.body.id)
	case KindChoice:
		fmt.Fprintf(&b, "c:%s/%d:%d", t.choiceVar.Name, t.choiceVar.Sort.id, t.body.id)
	case KindLet:
		b.WriteString("l:")
		for _, bd := range t.letBindings {
			fmt.Fprintf(&b, "%s=%d,", bd.Name, bd.Value.id)
		}
		fmt.Fprintf(&b, ":%d", t.body.id)
	case KindLambda:
		b.WriteString("L:")
		for _, p := range t.lambdaParams {
			fmt.Fprintf(&b, "%s/%d,", p.Name, p.Sort.id)
		}
		fmt.Fprintf(&b, ":%d", t.body.id)
	}
	return b.String()
}

func writeIDs(b *strings.Builder, terms []*Term) {
	for i, a := range terms {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, "%d", a.id)
	}
}

func (t *Term) String() string {
	switch t.kind {
	case KindInt:
		return t.intVal.String()
	case KindReal:
		return t.realVal.RatString()
	case KindString:
		return fmt.Sprintf("%q", t.strVal)
	case KindVar:
		return t.varName
	case KindApp:
		return paren(t.head.String(), t.args)
	case KindOp:
		return paren(t.op.String(), t.args)
	case KindSort:
		return t.sortValue.String()
	case KindQuantifier:
		kw := "forall"
		if t.quantKind == Exists {
			kw = "exists"
		}
		return fmt.Sprintf("(%s (%s) %s)", kw, bindersString(t.bound), t.body.String())
	case KindChoice:
		return fmt.Sprintf("(choice ((%s %s)) %s)", t.choiceVar.Name, t.choiceVar.Sort.String(), t.body.String())
	case KindLet:
		return fmt.Sprintf("(let (%s) %s)", bindingsString(t.letBindings), t.body.String())
	case KindLambda:
		return fmt.Sprintf("(lambda (%s) %s)", bindersString(t.lambdaParams), t.body.String())
	default:
		return "<unknown-term>"
	}
}

func paren(head string, args []*Term) string {
	if len(args) == 0 {
		return head
	}
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(head)
	for _, a := range args {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	b.WriteString(")")
	return b.String()
}

func bindersString(bs []Binder) string {
	var b strings.Builder
	for i, bnd := range bs {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%s %s)", bnd.Name, bnd.Sort.String())
	}
	return b.String()
}

func bindingsString(bs []Binding) string {
	var b strings.Builder
	for i, bd := range bs {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%s %s)", bd.Name, bd.Value.String())
	}
	return b.String()
}
