// Package errors defines the structured, value-typed errors surfaced by
// rule checkers and the elaborator. Every rule returns either success or a
// single error describing the first violation encountered; the dispatcher
// augments that error with the enclosing step's identity before it
// reaches the driver's caller.
package errors

import (
	"fmt"

	"alethecheck/internal/term"
)

// Kind is the closed set of error kinds a rule checker can report, mirroring
// spec.md §6's "Error kinds" list.
type Kind int

const (
	KindWrongNumberOfPremises Kind = iota
	KindWrongLengthOfClause
	KindWrongNumberOfArgs
	KindWrongNumberOfTermsInOp
	KindExpectedEqual
	KindExpectedToBe
	KindExpectedBoolConstant
	KindWrongLengthOfPremiseClause
	KindBrokenTransitivityChain
	KindUnknownRule
)

// Range is an inclusive lower bound and optional upper bound on a count. It
// is an alias of term.Range so shared assertions in internal/check can pass
// operator arities and count expectations through without conversion.
type Range = term.Range

// CheckError is a structured rule-checking failure. It names the rule, the
// step, and the specific mismatch in domain-meaningful terms, and carries
// enough context (expected/got) to be rendered for a user.
type CheckError struct {
	Kind    Kind
	Code    string
	Message string

	Rule string
	Step string

	Notes    []string
	HelpText string
}

func (e *CheckError) Error() string {
	if e.Rule == "" && e.Step == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] rule %q, step %q: %s", e.Code, e.Rule, e.Step, e.Message)
}

// WithStep augments err with the identity of the enclosing step and rule.
// The dispatcher calls this once, after a rule predicate returns an error,
// so individual rules never need to know their own step id.
func (e *CheckError) WithStep(rule, step string) *CheckError {
	e.Rule = rule
	e.Step = step
	return e
}
