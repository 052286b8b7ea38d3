// Package check implements the rule dispatcher and driver that walk a
// proof via the schedule iterator, assemble each step's argument bundle,
// and invoke the registered rule predicate.
package check

// Config carries the options recognized by the checker (spec.md §6).
type Config struct {
	// Strict escalates warnings, such as an unknown rule being skipped,
	// to hard errors.
	Strict bool

	// SkipUnknownRules accepts unknown rule names as holes instead of
	// erroring on them.
	SkipUnknownRules bool

	// IsRunningTest marks a run made from a test harness. No code in this
	// core reads this flag, and DeepEqTimer only accumulates time without
	// enforcing any budget.
	IsRunningTest bool

	// LiaViaCVC5 allows a linear-arithmetic rule to delegate to an
	// external solver. No rule in this core reads this flag; it is
	// threaded through Config purely so a full rule set (outside this
	// core) can observe it via the same Config value.
	LiaViaCVC5 bool
}
