package term

import "fmt"

// VarSet is the set of free simple-variable terms occurring in a term.
type VarSet map[*Term]struct{}

func NewVarSet() VarSet { return make(VarSet) }

func (s VarSet) Add(t *Term) { s[t] = struct{}{} }

func (s VarSet) Remove(t *Term) { delete(s, t) }

func (s VarSet) Contains(t *Term) bool {
	_, ok := s[t]
	return ok
}

func (s VarSet) Clone() VarSet {
	out := make(VarSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s VarSet) UnionWith(other VarSet) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// Pool is the hash-consing store for terms. It guarantees that two
// structurally equal terms added to the pool share one allocation, so
// reference identity implies value equality for terms from this pool. It
// also memoizes sort inference and free-variable computation.
//
// A Pool is not safe for concurrent use; a parallel driver must give each
// worker its own pool.
type Pool struct {
	byKey  map[string]*Term
	nextID uint64

	sorts    map[*Term]Sort
	freeVars map[*Term]VarSet

	boolSortTerm *Term
	boolTrue     *Term
	boolFalse    *Term
}

// NewPool constructs a pool already containing the Bool sort and the
// boolean constants true and false.
func NewPool() *Pool {
	p := &Pool{
		byKey:    make(map[string]*Term),
		sorts:    make(map[*Term]Sort),
		freeVars: make(map[*Term]VarSet),
	}
	p.boolSortTerm = p.Add(NewSortTerm(BoolSort()))
	p.boolTrue = p.Add(NewVar("true", p.boolSortTerm))
	p.boolFalse = p.Add(NewVar("false", p.boolSortTerm))
	return p
}

func (p *Pool) BoolTrue() *Term  { return p.boolTrue }
func (p *Pool) BoolFalse() *Term { return p.boolFalse }

func (p *Pool) BoolConstant(v bool) *Term {
	if v {
		return p.boolTrue
	}
	return p.boolFalse
}

// Add interns term and ensures its sort is cached. If a structurally equal
// term already exists in the pool, the existing reference is returned.
func (p *Pool) Add(t *Term) *Term {
	key := t.key()
	if existing, ok := p.byKey[key]; ok {
		return existing
	}
	p.nextID++
	t.id = p.nextID
	p.byKey[key] = t
	p.computeSort(t)
	return t
}

// AddAll is a convenience bulk form of Add.
func (p *Pool) AddAll(terms []*Term) []*Term {
	out := make([]*Term, len(terms))
	for i, t := range terms {
		out[i] = p.Add(t)
	}
	return out
}

// Sort returns the cached sort of term. It requires that Add was
// previously called on term; calling it on an un-added term is a
// programmer error.
func (p *Pool) Sort(t *Term) Sort {
	s, ok := p.sorts[t]
	if !ok {
		panic(fmt.Sprintf("term pool: Sort called on un-added term %s", t.String()))
	}
	return s
}

func (p *Pool) computeSort(t *Term) Sort {
	if s, ok := p.sorts[t]; ok {
		return s
	}
	var result Sort
	switch t.kind {
	case KindInt:
		result = IntSort()
	case KindReal:
		result = RealSort()
	case KindString:
		result = StringSort()
	case KindVar:
		result = t.varSort.AsSort()
	case KindOp:
		result = p.computeOpSort(t)
	case KindApp:
		head := p.computeSort(t.head)
		if head.kind != SortFunction {
			panic("term pool: application head is not function-sorted")
		}
		result = head.FunctionReturn().AsSort()
	case KindSort:
		result = t.sortValue
	case KindQuantifier:
		result = BoolSort()
	case KindChoice:
		result = t.choiceVar.Sort.AsSort()
	case KindLet:
		result = p.computeSort(t.body)
	case KindLambda:
		sorts := make([]*Term, 0, len(t.lambdaParams)+1)
		for _, param := range t.lambdaParams {
			sorts = append(sorts, param.Sort)
		}
		bodySort := p.computeSort(t.body)
		sorts = append(sorts, p.Add(NewSortTerm(bodySort)))
		result = FunctionSort(sorts...)
	default:
		panic(fmt.Sprintf("term pool: cannot compute sort of term kind %d", t.kind))
	}
	p.sorts[t] = result
	return result
}

func (p *Pool) computeOpSort(t *Term) Sort {
	op := t.op
	if op.IsLogical() {
		return BoolSort()
	}
	switch op {
	case OpIte:
		return p.computeSort(t.args[1])
	case OpAdd, OpSub, OpMult:
		for _, a := range t.args {
			if p.computeSort(a).Kind() == SortReal {
				return RealSort()
			}
		}
		return IntSort()
	case OpRealDiv, OpToReal:
		return RealSort()
	case OpIntDiv, OpMod, OpAbs, OpToInt:
		return IntSort()
	case OpSelect:
		arr := p.computeSort(t.args[0])
		if arr.Kind() != SortArray {
			panic("term pool: select applied to non-array term")
		}
		return arr.ArrayValue().AsSort()
	case OpStore:
		return p.computeSort(t.args[0])
	default:
		panic(fmt.Sprintf("term pool: unhandled operator %s in sort inference", op))
	}
}

// FreeVars returns the memoized set of free variables of term, computing
// it on first use.
func (p *Pool) FreeVars(t *Term) VarSet {
	if set, ok := p.freeVars[t]; ok {
		return set
	}
	var result VarSet
	switch t.kind {
	case KindApp:
		result = p.FreeVars(t.head).Clone()
		for _, a := range t.args {
			result.UnionWith(p.FreeVars(a))
		}
	case KindOp:
		result = NewVarSet()
		for _, a := range t.args {
			result.UnionWith(p.FreeVars(a))
		}
	case KindQuantifier:
		result = p.FreeVars(t.body).Clone()
		for _, bnd := range t.bound {
			result.Remove(p.internBoundVar(bnd))
		}
	case KindLambda:
		result = p.FreeVars(t.body).Clone()
		for _, bnd := range t.lambdaParams {
			result.Remove(p.internBoundVar(bnd))
		}
	case KindLet:
		result = p.FreeVars(t.body).Clone()
		for _, bd := range t.letBindings {
			sort := p.Add(NewSortTerm(p.computeSort(bd.Value)))
			result.Remove(p.Add(NewVar(bd.Name, sort)))
		}
	case KindChoice:
		result = p.FreeVars(t.body).Clone()
		result.Remove(p.internBoundVar(t.choiceVar))
	case KindVar:
		result = NewVarSet()
		result.Add(t)
	default:
		// Other terminals and sort terms have no free variables.
		result = NewVarSet()
	}
	p.freeVars[t] = result
	return result
}

func (p *Pool) internBoundVar(b Binder) *Term {
	return p.Add(NewVar(b.Name, b.Sort))
}
