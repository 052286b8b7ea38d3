package check

import (
	"alethecheck/internal/errors"
	"alethecheck/internal/proof"
)

// CheckFn is a rule's checking predicate: given the assembled RuleArgs, it
// returns nil on success or a CheckError describing the violated invariant.
type CheckFn func(*RuleArgs) *errors.CheckError

// ElaborateFn is a rule's elaboration predicate: it behaves like CheckFn
// but may additionally rewrite the proof by returning replacement commands
// (spec.md §5). A nil slice means the original step is kept unchanged.
type ElaborateFn func(*RuleArgs) ([]*proof.Command, *errors.CheckError)

// Dispatcher maps a rule name to its checking and, optionally, elaborating
// predicates.
type Dispatcher struct {
	checkers   map[string]CheckFn
	elaborates map[string]ElaborateFn
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		checkers:   make(map[string]CheckFn),
		elaborates: make(map[string]ElaborateFn),
	}
}

// Register associates a rule name with its checking predicate.
func (d *Dispatcher) Register(rule string, fn CheckFn) {
	d.checkers[rule] = fn
}

// RegisterElaboration associates a rule name with its elaboration
// predicate. A rule may be registered for elaboration without replacing
// its checker. When no elaboration is registered, Driver.Elaborate keeps
// the original step unchanged and does not run the checker.
func (d *Dispatcher) RegisterElaboration(rule string, fn ElaborateFn) {
	d.elaborates[rule] = fn
}

func (d *Dispatcher) Lookup(rule string) (CheckFn, bool) {
	fn, ok := d.checkers[rule]
	return fn, ok
}

func (d *Dispatcher) LookupElaboration(rule string) (ElaborateFn, bool) {
	fn, ok := d.elaborates[rule]
	return fn, ok
}
